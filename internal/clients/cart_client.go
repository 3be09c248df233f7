package clients

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/Gunvolt24/sku_upload/internal/domain"
	"github.com/Gunvolt24/sku_upload/internal/ports"
)

// Проверка, что CartClient удовлетворяет интерфейсу CartSubmitter.
var _ ports.CartSubmitter = (*CartClient)(nil)

// CartClient — клиент сервиса корзины.
type CartClient struct {
	caller jsonCaller
}

// NewCartClient — baseURL вида http://cart:8082.
func NewCartClient(baseURL string, client *http.Client) *CartClient {
	return &CartClient{caller: newJSONCaller(baseURL, client, "cart")}
}

type addItemsRequest struct {
	CartID     string `json:"cartId"`
	CSVContent string `json:"csvContent"`
}

// AddItems — POST /carts/{cartId}/items/csv.
func (c *CartClient) AddItems(ctx context.Context, cartID, csvContent string) (*domain.SubmissionResponse, error) {
	if cartID == "" {
		return nil, &CallError{Op: "add_items", Err: errors.New("empty cart id")}
	}
	path := "/carts/" + url.PathEscape(cartID) + "/items/csv"

	var out domain.SubmissionResponse
	if err := c.caller.postJSON(ctx, "add_items", path, addItemsRequest{CartID: cartID, CSVContent: csvContent}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
