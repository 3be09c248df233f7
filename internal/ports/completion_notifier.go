package ports

import (
	"context"

	"github.com/Gunvolt24/sku_upload/internal/domain"
)

// CompletionNotifier — однократный сигнал о завершении прогона.
type CompletionNotifier interface {
	Notify(ctx context.Context, run *domain.Run) error
}
