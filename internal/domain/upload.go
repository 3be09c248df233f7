package domain

import (
	"io"
	"time"
)

// UploadFile — файл, полученный от источника (HTTP, CLI).
// Body читается один раз внутри прогона.
type UploadFile struct {
	Name      string
	MediaType string
	Body      io.Reader
}

// WorkflowResult — итог одного прогона конвейера.
// Пересоздаётся на каждый прогон, между прогонами ничего не накапливается.
type WorkflowResult struct {
	ParsedRows        []Row              `json:"parsedRows"`
	Errors            []RowError         `json:"errors"`
	SubmissionOutcome *ValidationOutcome `json:"submissionOutcome,omitempty"`
}

// HasErrors — в отчёте есть хотя бы одна ошибка.
func (r *WorkflowResult) HasErrors() bool { return len(r.Errors) > 0 }

// Severity — уровень итогового уведомления.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Completion — однократный сигнал о завершении прогона.
type Completion struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// RunStatus — терминальное состояние прогона.
type RunStatus string

const (
	RunRejected   RunStatus = "rejected"   // ошибка уровня файла
	RunCompleted  RunStatus = "completed"  // без ошибок
	RunPartial    RunStatus = "partial"    // есть ошибки строк, часть позиций могла уйти в корзину
	RunFailed     RunStatus = "failed"     // ошибка вызова удалённого сервиса
	RunSuperseded RunStatus = "superseded" // вытеснен более новым прогоном той же сессии
)

// Run — прогон с метаданными (то, что храним и отдаём по HTTP).
type Run struct {
	ID         string         `json:"id"`
	SessionID  string         `json:"sessionId"`
	FileName   string         `json:"fileName"`
	Status     RunStatus      `json:"status"`
	Result     WorkflowResult `json:"result"`
	Completion Completion     `json:"completion"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
}

// CartSummary — событие контекста корзины: какой корзине принадлежит сессия.
type CartSummary struct {
	SessionID string `json:"sessionId"`
	CartID    string `json:"cartId"`
}
