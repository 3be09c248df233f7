package domain

// Row — строка данных CSV для отображения.
// Index — номер строки в исходном файле (1-based, заголовок = 1).
// Quantity == nil означает, что количество не удалось разобрать (строка уже имеет Structural-ошибку).
type Row struct {
	Index    int    `json:"row"`
	SKU      string `json:"sku"`
	Quantity *int   `json:"quantity"`
}

// HasQuantity — количество распознано как целое число.
func (r Row) HasQuantity() bool { return r.Quantity != nil }
