package usecase

import (
	"fmt"

	"github.com/Gunvolt24/sku_upload/internal/domain"
)

const (
	TitleComplete  = "File Processing Complete"
	TitleFailed    = "File Processing Failed"
	TitleCancelled = "File Processing Cancelled"

	messageSuccess    = "Uploaded file processed successfully."
	messageSuperseded = "Processing was cancelled by a newer upload."
)

// completionFor — уведомление о завершении прогона.
// Уровень честный: success только при отсутствии ошибок.
func completionFor(status domain.RunStatus, result *domain.WorkflowResult) domain.Completion {
	switch status {
	case domain.RunCompleted:
		return domain.Completion{Title: TitleComplete, Message: messageSuccess, Severity: domain.SeveritySuccess}
	case domain.RunPartial:
		return domain.Completion{
			Title:    TitleComplete,
			Message:  fmt.Sprintf("Uploaded file processed with %d error(s).", len(result.Errors)),
			Severity: domain.SeverityWarning,
		}
	case domain.RunSuperseded:
		return domain.Completion{Title: TitleCancelled, Message: messageSuperseded, Severity: domain.SeverityWarning}
	default:
		return domain.Completion{Title: TitleFailed, Message: failureMessage(result), Severity: domain.SeverityError}
	}
}

// failureMessage — текст сбоя: ошибка вызова, если есть, иначе первая ошибка.
func failureMessage(result *domain.WorkflowResult) string {
	for _, e := range result.Errors {
		if e.Kind == domain.KindRemoteValidationFailure || e.Kind == domain.KindSubmissionCallFailure {
			return e.Reason
		}
	}
	if len(result.Errors) > 0 {
		return result.Errors[0].Reason
	}
	return domain.ReasonUnknownError
}
