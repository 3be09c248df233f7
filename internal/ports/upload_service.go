package ports

import (
	"context"

	"github.com/Gunvolt24/sku_upload/internal/domain"
)

// UploadService — обработка загруженных файлов и чтение истории.
type UploadService interface {
	Process(ctx context.Context, sessionID string, file domain.UploadFile) (*domain.Run, error)
	Processing(sessionID string) bool
	GetRun(ctx context.Context, runID string) (*domain.Run, error)
	RunsBySession(ctx context.Context, sessionID string, limit, offset int) ([]*domain.Run, error)
}

// CartRegistrar — регистрация корзины сессии (HTTP-путь контекста корзины).
type CartRegistrar interface {
	SetCart(ctx context.Context, sessionID, cartID string) error
}
