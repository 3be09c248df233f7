package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Gunvolt24/sku_upload/internal/domain"
	"github.com/Gunvolt24/sku_upload/internal/ports"
	"github.com/Gunvolt24/sku_upload/pkg/ctxmeta"
	"github.com/Gunvolt24/sku_upload/pkg/metrics"
	"github.com/Gunvolt24/sku_upload/pkg/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// Проверка, что UploadService удовлетворяет интерфейсу ports.UploadService.
var _ ports.UploadService = (*UploadService)(nil)

// UploadService — прогоны загрузок: защита от повторного входа, флаг обработки,
// уведомление о завершении и история.
type UploadService struct {
	validator ports.UploadValidator
	pipeline  *Pipeline
	runs      ports.RunRepository
	notifier  ports.CompletionNotifier
	log       ports.Logger
	guard     *runGuard
	now       func() time.Time
}

// NewUploadService — DI-конструктор.
func NewUploadService(
	validator ports.UploadValidator,
	remote ports.RemoteValidator,
	submitter ports.CartSubmitter,
	carts ports.CartIDProvider,
	runs ports.RunRepository,
	notifier ports.CompletionNotifier,
	log ports.Logger,
) *UploadService {
	return &UploadService{
		validator: validator,
		pipeline:  NewPipeline(validator, remote, submitter, carts, log),
		runs:      runs,
		notifier:  notifier,
		log:       log,
		guard:     newRunGuard(),
		now:       time.Now,
	}
}

// Process — один прогон файла для сессии.
// Уведомление о завершении отправляется ровно один раз на любом пути.
// Вытесненный прогон не сохраняется и возвращает ErrRunSuperseded вместе с Run.
// Ошибка сохранения логируется и возвращается, Run при этом тоже возвращается.
func (s *UploadService) Process(ctx context.Context, sessionID string, file domain.UploadFile) (*domain.Run, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	run := &domain.Run{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		FileName:  file.Name,
		StartedAt: s.now().UTC(),
	}
	ctx = ctxmeta.WithSessionID(ctxmeta.WithRunID(ctx, run.ID), sessionID)
	ctx, span := telemetry.StartSpan(ctx, "upload.process",
		attribute.String("run.id", run.ID),
		attribute.String("file.name", file.Name),
	)

	// Прогон не зависит от жизни запроса: отменить его может только более новый прогон сессии.
	runCtx, token, end := s.guard.begin(context.WithoutCancel(ctx), sessionID)
	defer end()
	s.log.Infof(ctx, "run started file=%q", file.Name)

	result, status := s.execute(runCtx, sessionID, file)
	if status != domain.RunSuperseded && !s.guard.current(sessionID, token) {
		status = domain.RunSuperseded
	}
	end()

	run.Status = status
	run.Result = result
	run.Completion = completionFor(status, &result)
	run.FinishedAt = s.now().UTC()
	record(&run.Result, status)

	// Итог сохраняем и публикуем даже если клиент уже отключился.
	outCtx := context.WithoutCancel(ctx)
	var saveErr error
	if status != domain.RunSuperseded {
		if err := s.runs.Save(outCtx, run); err != nil {
			s.log.Errorf(ctx, "runs.Save failed err=%v", err)
			saveErr = fmt.Errorf("failed to save run: %w", err)
		}
	}
	if err := s.notifier.Notify(outCtx, run); err != nil {
		s.log.Warnf(ctx, "completion notify failed err=%v", err)
	}

	s.log.Infof(ctx, "run finished status=%s rows=%d errors=%d took=%s",
		status, len(result.ParsedRows), len(result.Errors), run.FinishedAt.Sub(run.StartedAt))

	if status == domain.RunSuperseded {
		telemetry.EndSpan(span, ErrRunSuperseded)
		return run, ErrRunSuperseded
	}
	telemetry.EndSpan(span, saveErr)
	return run, saveErr
}

// execute — проверка типа, чтение файла и конвейер.
func (s *UploadService) execute(ctx context.Context, sessionID string, file domain.UploadFile) (domain.WorkflowResult, domain.RunStatus) {
	if fileErr := s.validator.CheckFile(file); fileErr != nil {
		s.log.Infof(ctx, "file rejected before reading: %s", fileErr.Reason)
		return rejected(*fileErr), domain.RunRejected
	}

	text, err := readText(file.Body)
	if err != nil {
		s.log.Warnf(ctx, "read upload failed err=%v", err)
		return rejected(domain.FileError(domain.KindUnreadableFile, domain.ReasonFailedToRead)), domain.RunRejected
	}
	return s.pipeline.Run(ctx, sessionID, text)
}

// Processing — у сессии идёт прогон.
func (s *UploadService) Processing(sessionID string) bool {
	return s.guard.processing(sessionID)
}

// GetRun — прогон по id; (nil, nil), если его нет.
func (s *UploadService) GetRun(ctx context.Context, runID string) (*domain.Run, error) {
	run, err := s.runs.GetByID(ctx, runID)
	if err != nil {
		s.log.Errorf(ctx, "runs.GetByID failed run_id=%s err=%v", runID, err)
		return nil, err
	}
	return run, nil
}

// RunsBySession — проксирование в репозиторий (пагинация уже валидирована на верхнем уровне).
func (s *UploadService) RunsBySession(ctx context.Context, sessionID string, limit, offset int) ([]*domain.Run, error) {
	return s.runs.ListBySession(ctx, sessionID, limit, offset)
}

func rejected(fileErr domain.RowError) domain.WorkflowResult {
	return domain.WorkflowResult{ParsedRows: []domain.Row{}, Errors: []domain.RowError{fileErr}}
}

func readText(body io.Reader) (string, error) {
	if body == nil {
		return "", fmt.Errorf("empty body")
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// record — метрики завершённого прогона.
func record(result *domain.WorkflowResult, status domain.RunStatus) {
	metrics.UploadRuns.WithLabelValues(string(status)).Inc()
	for _, e := range result.Errors {
		metrics.UploadRowErrors.WithLabelValues(string(e.Stage)).Inc()
	}
}
