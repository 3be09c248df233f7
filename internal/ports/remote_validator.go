package ports

import (
	"context"

	"github.com/Gunvolt24/sku_upload/internal/domain"
)

// RemoteValidator — сервис бизнес-валидации (например, неизвестные SKU).
// Ошибка означает сбой самого вызова, а не найденные ошибки строк.
type RemoteValidator interface {
	ValidateCSV(ctx context.Context, csvContent string) (*domain.RemoteValidation, error)
}
