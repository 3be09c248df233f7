//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/sku_upload/internal/domain"
	"github.com/google/uuid"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeRun — завершённый прогон с одной валидной и одной ошибочной строкой.
func MakeRun(opts ...func(*domain.Run)) domain.Run {
	now := time.Now().UTC().Truncate(time.Millisecond)
	qty := 5

	r := domain.Run{
		ID:        uuid.NewString(),
		SessionID: "sess-" + UniqSuffix(),
		FileName:  "items.csv",
		Status:    domain.RunPartial,
		Result: domain.WorkflowResult{
			ParsedRows: []domain.Row{
				{Index: 2, SKU: "A1", Quantity: &qty},
				{Index: 3, SKU: "A2"},
			},
			Errors: []domain.RowError{
				{Row: 3, SKU: "A2", Reason: domain.ReasonQuantityRequired, Stage: domain.StageStructural, Kind: domain.KindMissingQuantity},
			},
			SubmissionOutcome: &domain.ValidationOutcome{Success: true, Errors: []domain.RowError{}},
		},
		Completion: domain.Completion{
			Title:    "File Processing Complete",
			Message:  "Uploaded file processed with 1 error(s).",
			Severity: domain.SeverityWarning,
		},
		StartedAt:  now.Add(-time.Second),
		FinishedAt: now,
	}

	for _, fn := range opts {
		fn(&r)
	}
	return r
}

func WithSession(sessionID string) func(*domain.Run) {
	return func(r *domain.Run) { r.SessionID = sessionID }
}

func WithStartedAt(at time.Time) func(*domain.Run) {
	return func(r *domain.Run) {
		r.StartedAt = at.UTC().Truncate(time.Millisecond)
		r.FinishedAt = r.StartedAt.Add(time.Second)
	}
}

func WithStatus(status domain.RunStatus) func(*domain.Run) {
	return func(r *domain.Run) { r.Status = status }
}
