package ports

import (
	"context"

	"github.com/Gunvolt24/sku_upload/internal/domain"
)

// RunRepository — история прогонов.
type RunRepository interface {
	Save(ctx context.Context, run *domain.Run) error
	// GetByID — (nil, nil), если прогона нет.
	GetByID(ctx context.Context, runID string) (*domain.Run, error)
	ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]*domain.Run, error)
}
