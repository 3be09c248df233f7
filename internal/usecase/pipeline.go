package usecase

import (
	"context"
	"errors"

	"github.com/Gunvolt24/sku_upload/internal/domain"
	"github.com/Gunvolt24/sku_upload/internal/ports"
	"github.com/Gunvolt24/sku_upload/pkg/metrics"
	"github.com/Gunvolt24/sku_upload/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// Pipeline — конвейер одного прогона: локальная проверка → бизнес-валидация → отправка в корзину.
// Не хранит состояния между прогонами, безопасен для конкурентного использования.
type Pipeline struct {
	validator ports.UploadValidator
	remote    ports.RemoteValidator
	submitter ports.CartSubmitter
	carts     ports.CartIDProvider
	log       ports.Logger
}

// NewPipeline — DI-конструктор.
func NewPipeline(
	validator ports.UploadValidator,
	remote ports.RemoteValidator,
	submitter ports.CartSubmitter,
	carts ports.CartIDProvider,
	log ports.Logger,
) *Pipeline {
	return &Pipeline{
		validator: validator,
		remote:    remote,
		submitter: submitter,
		carts:     carts,
		log:       log,
	}
}

// runState — данные, которые этапы передают друг другу внутри одного прогона.
type runState struct {
	sessionID string
	text      string

	rows       []domain.Row
	eligible   string // заголовок + структурно валидные строки
	structural []domain.RowError
	business   []domain.RowError
	submission []domain.RowError
	callErr    *domain.RowError // синтетическая ошибка вызова корзины
	outcome    *domain.ValidationOutcome
	toSubmit   string

	// терминальный итог, если этап завершил прогон досрочно
	final  *domain.WorkflowResult
	status domain.RunStatus
}

// stage — шаг конвейера. done == true — прогон завершён, следующие этапы не выполняются.
// err уходит только в трейс и лог: для пользователя сбой уже превращён в ошибку строки.
type stage struct {
	name string
	run  func(ctx context.Context, st *runState) (done bool, err error)
}

// Run — прогнать текст файла через все этапы.
// Возвращает отчёт и терминальный статус. Отменённый ctx даёт статус superseded.
func (p *Pipeline) Run(ctx context.Context, sessionID, text string) (domain.WorkflowResult, domain.RunStatus) {
	st := &runState{sessionID: sessionID, text: text}
	stages := []stage{
		{name: "local_validation", run: p.localStage},
		{name: "remote_validation", run: p.remoteStage},
		{name: "submission", run: p.submitStage},
	}

	for _, s := range stages {
		if ctx.Err() != nil {
			return p.cancelled(st), domain.RunSuperseded
		}
		stageCtx, span := telemetry.StartSpan(ctx, "pipeline."+s.name, attribute.String("session.id", sessionID))
		done, err := s.run(stageCtx, st)
		telemetry.EndSpan(span, err)
		if err != nil {
			p.log.Warnf(ctx, "stage %s failed: %v", s.name, err)
		}
		if done {
			if st.final == nil {
				return p.cancelled(st), domain.RunSuperseded
			}
			return *st.final, st.status
		}
	}

	result := p.merge(ctx, st)
	return result, statusOf(&result)
}

// localStage — шаги 1–4 и построчная проверка; файл целиком отклонён → конец.
func (p *Pipeline) localStage(ctx context.Context, st *runState) (bool, error) {
	report := p.validator.Validate(ctx, st.text)
	if report.Rejected() {
		st.final = &domain.WorkflowResult{ParsedRows: []domain.Row{}, Errors: report.Errors}
		st.status = domain.RunRejected
		p.log.Infof(ctx, "file rejected: %s", report.Errors[0].Reason)
		return true, nil
	}

	st.rows = report.Rows
	st.structural = report.Errors
	st.eligible = report.EligibleCSV
	metrics.UploadParsedRows.Add(float64(len(report.Rows)))
	p.log.Debugf(ctx, "local validation rows=%d structural_errors=%d", len(report.Rows), len(report.Errors))
	return false, nil
}

// remoteStage — бизнес-валидация полного исходного текста.
// Сбой вызова отбрасывает собранные ошибки строк: в отчёте остаётся одна ошибка.
func (p *Pipeline) remoteStage(ctx context.Context, st *runState) (bool, error) {
	resp, err := p.remote.ValidateCSV(ctx, st.text)
	if err != nil {
		if ctx.Err() != nil {
			return true, err
		}
		failure := domain.RowError{
			Reason: domain.ReasonPrefixValidation + errorDetail(err),
			Stage:  domain.StageBusinessRule,
			Kind:   domain.KindRemoteValidationFailure,
		}
		st.final = &domain.WorkflowResult{ParsedRows: st.rows, Errors: []domain.RowError{failure}}
		st.status = domain.RunFailed
		return true, err
	}
	if resp == nil {
		resp = &domain.RemoteValidation{}
	}

	st.business = convertRemote(resp.Errors, domain.StageBusinessRule, domain.KindBusinessRuleViolation)

	filtered := ""
	if resp.FilteredCSV != nil {
		filtered = *resp.FilteredCSV
	}
	switch {
	case filtered != "":
		// текст сервиса уходит в корзину без изменений: строки в нём уже подтверждены
		st.toSubmit = filtered
	case len(st.business) == 0:
		// сервис не вернул отфильтрованный текст: отправляем только структурно валидные строки
		st.toSubmit = st.eligible
	}
	p.log.Debugf(ctx, "remote validation business_errors=%d filtered=%t", len(st.business), filtered != "")
	return false, nil
}

// submitStage — отправка в корзину, если есть что отправлять и корзина известна.
func (p *Pipeline) submitStage(ctx context.Context, st *runState) (bool, error) {
	if st.toSubmit == "" {
		p.log.Infof(ctx, "submission skipped: nothing to submit")
		return false, nil
	}
	cartID, ok := p.carts.CartID(ctx, st.sessionID)
	if !ok || cartID == "" {
		p.log.Infof(ctx, "submission skipped: no cart for session")
		return false, nil
	}

	resp, err := p.submitter.AddItems(ctx, cartID, st.toSubmit)
	if err != nil {
		if ctx.Err() != nil {
			return true, err
		}
		failure := domain.RowError{
			Reason: domain.ReasonPrefixAddToCart + errorDetail(err),
			Stage:  domain.StageSubmission,
			Kind:   domain.KindSubmissionCallFailure,
		}
		st.callErr = &failure
		st.outcome = &domain.ValidationOutcome{Success: false, Errors: []domain.RowError{failure}}
		return false, err
	}
	if resp == nil {
		resp = &domain.SubmissionResponse{}
	}

	st.submission = convertRemote(resp.Errors, domain.StageSubmission, domain.KindSubmissionRowViolation)
	st.outcome = &domain.ValidationOutcome{Success: resp.Success, Errors: st.submission}
	p.log.Infof(ctx, "submitted to cart=%s success=%t errors=%d", cartID, resp.Success, len(st.submission))
	return false, nil
}

// merge — итоговая последовательность: Submission, Structural, BusinessRule, ошибка вызова корзины.
func (p *Pipeline) merge(ctx context.Context, st *runState) domain.WorkflowResult {
	all := make([]domain.RowError, 0, len(st.submission)+len(st.structural)+len(st.business)+1)
	all = append(all, st.submission...)
	all = append(all, st.structural...)
	all = append(all, st.business...)
	if st.callErr != nil {
		all = append(all, *st.callErr)
	}

	rows := st.rows
	if rows == nil {
		rows = []domain.Row{}
	}
	return domain.WorkflowResult{
		ParsedRows:        rows,
		Errors:            dedupe(ctx, p.log, all),
		SubmissionOutcome: st.outcome,
	}
}

// cancelled — отчёт прогона, прерванного отменой контекста (в историю не попадает).
func (p *Pipeline) cancelled(st *runState) domain.WorkflowResult {
	rows := st.rows
	if rows == nil {
		rows = []domain.Row{}
	}
	return domain.WorkflowResult{ParsedRows: rows, Errors: []domain.RowError{}}
}

// statusOf — статус прогона, дошедшего до конца обычным путём.
func statusOf(result *domain.WorkflowResult) domain.RunStatus {
	for _, e := range result.Errors {
		if e.Kind == domain.KindSubmissionCallFailure {
			return domain.RunFailed
		}
	}
	if !result.HasErrors() && (result.SubmissionOutcome == nil || result.SubmissionOutcome.Success) {
		return domain.RunCompleted
	}
	return domain.RunPartial
}

// convertRemote — ошибки удалённого сервиса в RowError заданного этапа.
func convertRemote(in []domain.RemoteRowError, stage domain.Stage, kind domain.ErrorKind) []domain.RowError {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.RowError, 0, len(in))
	for _, e := range in {
		row := 0
		if e.RowNumber != nil && *e.RowNumber > 0 {
			row = *e.RowNumber
		}
		reason := e.Reason
		if reason == "" {
			reason = domain.ReasonUnknownError
		}
		out = append(out, domain.RowError{Row: row, SKU: e.SKU, Reason: reason, Stage: stage, Kind: kind})
	}
	return out
}

type rowStage struct {
	row   int
	stage domain.Stage
}

// dedupe — убирает повторы по (строка, этап), первая запись остаётся.
// Ошибки без номера строки не сравниваются между собой.
func dedupe(ctx context.Context, log ports.Logger, in []domain.RowError) []domain.RowError {
	seen := make(map[rowStage]struct{}, len(in))
	out := make([]domain.RowError, 0, len(in))
	for _, e := range in {
		if e.HasRow() {
			key := rowStage{row: e.Row, stage: e.Stage}
			if _, dup := seen[key]; dup {
				log.Warnf(ctx, "duplicate error dropped row=%d stage=%s reason=%q", e.Row, e.Stage, e.Reason)
				continue
			}
			seen[key] = struct{}{}
		}
		out = append(out, e)
	}
	return out
}

// detailer — ошибка вызова с текстом для пользователя (см. clients.CallError).
type detailer interface {
	Detail() string
}

// errorDetail — подробность сбоя вызова; "Unknown error", если её нет.
func errorDetail(err error) string {
	var d detailer
	if errors.As(err, &d) {
		if msg := d.Detail(); msg != "" {
			return msg
		}
	}
	return domain.ReasonUnknownError
}
