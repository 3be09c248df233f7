package ports

import (
	"context"

	"github.com/Gunvolt24/sku_upload/internal/domain"
)

// CartSubmitter — сервис корзины: добавление позиций из CSV.
type CartSubmitter interface {
	AddItems(ctx context.Context, cartID, csvContent string) (*domain.SubmissionResponse, error)
}
