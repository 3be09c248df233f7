package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/sku_upload/internal/domain"
	"github.com/Gunvolt24/sku_upload/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что RunRepository удовлетворяет интерфейсу RunRepository.
var _ ports.RunRepository = (*RunRepository)(nil)

const (
	errorListResult     = "result"
	errorListSubmission = "submission"
)

// RunRepository — история прогонов на Postgres (pgxpool).
type RunRepository struct {
	pool *pgxpool.Pool
}

// NewRunRepository - конструктор RunRepository.
func NewRunRepository(pool *pgxpool.Pool) *RunRepository { return &RunRepository{pool: pool} }

// Save — транзакционно сохраняет прогон; повторный Save с тем же id полностью заменяет строки и ошибки.
func (r *RunRepository) Save(ctx context.Context, run *domain.Run) error {
	if run == nil || run.ID == "" {
		return errors.New("run is empty or id is required")
	}
	if run.SessionID == "" {
		return errors.New("session_id is required")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	var submissionSuccess *bool
	if run.Result.SubmissionOutcome != nil {
		ok := run.Result.SubmissionOutcome.Success
		submissionSuccess = &ok
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO upload_runs (
			id, session_id, file_name, status, completion_title, completion_message,
			completion_severity, submission_success, started_at, finished_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			session_id = EXCLUDED.session_id,
			file_name = EXCLUDED.file_name,
			status = EXCLUDED.status,
			completion_title = EXCLUDED.completion_title,
			completion_message = EXCLUDED.completion_message,
			completion_severity = EXCLUDED.completion_severity,
			submission_success = EXCLUDED.submission_success,
			started_at = EXCLUDED.started_at,
			finished_at = EXCLUDED.finished_at
	`,
		run.ID, run.SessionID, run.FileName, string(run.Status), run.Completion.Title, run.Completion.Message,
		string(run.Completion.Severity), submissionSuccess, run.StartedAt, run.FinishedAt,
	); err != nil {
		return fmt.Errorf("upsert run: %w", err)
	}

	// строки и ошибки — полная замена
	if _, err = tx.Exec(ctx, `DELETE FROM run_rows WHERE run_id = $1`, run.ID); err != nil {
		return fmt.Errorf("delete rows: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM run_errors WHERE run_id = $1`, run.ID); err != nil {
		return fmt.Errorf("delete errors: %w", err)
	}
	if err = copyRows(ctx, tx, run.ID, run.Result.ParsedRows); err != nil {
		return err
	}
	errs := errorRows(run.ID, errorListResult, run.Result.Errors)
	if run.Result.SubmissionOutcome != nil {
		errs = append(errs, errorRows(run.ID, errorListSubmission, run.Result.SubmissionOutcome.Errors)...)
	}
	if err = copyErrors(ctx, tx, errs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetByID — прогон целиком или (nil, nil), если записи нет.
func (r *RunRepository) GetByID(ctx context.Context, runID string) (*domain.Run, error) {
	runs, err := r.queryRuns(ctx, `
		SELECT id, session_id, file_name, status, completion_title, completion_message,
			completion_severity, submission_success, started_at, finished_at
		FROM upload_runs WHERE id = $1
	`, runID)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return runs[0], nil
}

// ListBySession — прогоны сессии, новые первыми.
// Два дочерних запроса на страницу (строки + ошибки), склейка в памяти с сохранением порядка.
func (r *RunRepository) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]*domain.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return r.queryRuns(ctx, `
		SELECT id, session_id, file_name, status, completion_title, completion_message,
			completion_severity, submission_success, started_at, finished_at
		FROM upload_runs
		WHERE session_id = $1
		ORDER BY started_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, sessionID, limit, offset)
}

// queryRuns — базовые записи по запросу, затем строки и ошибки для всех id разом.
func (r *RunRepository) queryRuns(ctx context.Context, query string, args ...any) ([]*domain.Run, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.Run, 0)
	byID := make(map[string]*domain.Run)
	ids := make([]string, 0)

	for rows.Next() {
		run := &domain.Run{Result: domain.WorkflowResult{ParsedRows: []domain.Row{}, Errors: []domain.RowError{}}}
		var status, severity string
		var submissionSuccess *bool
		if err := rows.Scan(
			&run.ID, &run.SessionID, &run.FileName, &status, &run.Completion.Title, &run.Completion.Message,
			&severity, &submissionSuccess, &run.StartedAt, &run.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Status = domain.RunStatus(status)
		run.Completion.Severity = domain.Severity(severity)
		if submissionSuccess != nil {
			run.Result.SubmissionOutcome = &domain.ValidationOutcome{Success: *submissionSuccess, Errors: []domain.RowError{}}
		}
		run.StartedAt, run.FinishedAt = run.StartedAt.UTC(), run.FinishedAt.UTC()

		runs = append(runs, run)
		byID[run.ID] = run
		ids = append(ids, run.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("runs rows: %w", err)
	}
	rows.Close()
	if len(runs) == 0 {
		return runs, nil
	}

	if err := r.loadRows(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err := r.loadErrors(ctx, ids, byID); err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *RunRepository) loadRows(ctx context.Context, ids []string, byID map[string]*domain.Run) error {
	rows, err := r.pool.Query(ctx, `
		SELECT run_id, row_index, sku, quantity
		FROM run_rows
		WHERE run_id = ANY($1::text[])
		ORDER BY run_id, position
	`, ids)
	if err != nil {
		return fmt.Errorf("select rows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var runID string
		var row domain.Row
		if err := rows.Scan(&runID, &row.Index, &row.SKU, &row.Quantity); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		if run := byID[runID]; run != nil {
			run.Result.ParsedRows = append(run.Result.ParsedRows, row)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows rows: %w", err)
	}
	return nil
}

func (r *RunRepository) loadErrors(ctx context.Context, ids []string, byID map[string]*domain.Run) error {
	rows, err := r.pool.Query(ctx, `
		SELECT run_id, list, row_index, sku, reason, stage, kind
		FROM run_errors
		WHERE run_id = ANY($1::text[])
		ORDER BY run_id, list, position
	`, ids)
	if err != nil {
		return fmt.Errorf("select errors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var runID, list, stage, kind string
		var e domain.RowError
		if err := rows.Scan(&runID, &list, &e.Row, &e.SKU, &e.Reason, &stage, &kind); err != nil {
			return fmt.Errorf("scan error: %w", err)
		}
		e.Stage, e.Kind = domain.Stage(stage), domain.ErrorKind(kind)

		run := byID[runID]
		switch {
		case run == nil:
		case list == errorListSubmission && run.Result.SubmissionOutcome != nil:
			run.Result.SubmissionOutcome.Errors = append(run.Result.SubmissionOutcome.Errors, e)
		case list == errorListResult:
			run.Result.Errors = append(run.Result.Errors, e)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("errors rows: %w", err)
	}
	return nil
}

// copyRows — вставка строк через COPY (CopyFromRows); быстрее, чем INSERT в цикле.
func copyRows(ctx context.Context, tx pgx.Tx, runID string, parsed []domain.Row) error {
	if len(parsed) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(parsed))
	for i, row := range parsed {
		rows = append(rows, []any{runID, i, row.Index, row.SKU, row.Quantity})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"run_rows"},
		[]string{"run_id", "position", "row_index", "sku", "quantity"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy rows: %w", err)
	}
	return nil
}

func copyErrors(ctx context.Context, tx pgx.Tx, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"run_errors"},
		[]string{"run_id", "list", "position", "row_index", "sku", "reason", "stage", "kind"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy errors: %w", err)
	}
	return nil
}

func errorRows(runID, list string, errs []domain.RowError) [][]any {
	rows := make([][]any, 0, len(errs))
	for i, e := range errs {
		rows = append(rows, []any{runID, list, i, e.Row, e.SKU, e.Reason, string(e.Stage), string(e.Kind)})
	}
	return rows
}
