package domain

// ValidationOutcome — ответ сервиса корзины на добавление позиций.
type ValidationOutcome struct {
	Success bool       `json:"success"`
	Errors  []RowError `json:"errors"`
}

// RemoteRowError — ошибка строки в ответе удалённого сервиса (формат провода).
// RowNumber == nil — сервис не указал номер строки.
type RemoteRowError struct {
	RowNumber *int   `json:"rowNumber"`
	SKU       string `json:"sku"`
	Reason    string `json:"reason"`
}

// RemoteValidation — ответ сервиса бизнес-валидации.
// FilteredCSV == nil — сервис не вернул отфильтрованный текст.
type RemoteValidation struct {
	Errors      []RemoteRowError `json:"errors"`
	FilteredCSV *string          `json:"filteredCsv"`
}

// SubmissionResponse — ответ сервиса корзины (формат провода).
type SubmissionResponse struct {
	Success bool             `json:"success"`
	Errors  []RemoteRowError `json:"errors"`
}
