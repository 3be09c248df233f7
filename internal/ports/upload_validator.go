package ports

import (
	"context"

	"github.com/Gunvolt24/sku_upload/internal/domain"
)

// UploadValidator — локальная проверка файла (без сети).
type UploadValidator interface {
	// CheckFile — проверка типа файла до чтения; nil, если файл поддерживается.
	CheckFile(file domain.UploadFile) *domain.RowError
	// Validate — структурная проверка текста файла.
	Validate(ctx context.Context, text string) domain.LocalReport
}
