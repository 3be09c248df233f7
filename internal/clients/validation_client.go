package clients

import (
	"context"
	"net/http"

	"github.com/Gunvolt24/sku_upload/internal/domain"
	"github.com/Gunvolt24/sku_upload/internal/ports"
)

// Проверка, что ValidationClient удовлетворяет интерфейсу RemoteValidator.
var _ ports.RemoteValidator = (*ValidationClient)(nil)

// ValidationClient — клиент сервиса бизнес-валидации SKU.
type ValidationClient struct {
	caller jsonCaller
}

// NewValidationClient — baseURL вида http://catalog:8081.
func NewValidationClient(baseURL string, client *http.Client) *ValidationClient {
	return &ValidationClient{caller: newJSONCaller(baseURL, client, "validation")}
}

type validateRequest struct {
	CSVContent string `json:"csvContent"`
}

// ValidateCSV — POST /validate с полным текстом файла.
func (c *ValidationClient) ValidateCSV(ctx context.Context, csvContent string) (*domain.RemoteValidation, error) {
	var out domain.RemoteValidation
	if err := c.caller.postJSON(ctx, "validate", "/validate", validateRequest{CSVContent: csvContent}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
