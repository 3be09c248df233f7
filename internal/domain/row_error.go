package domain

// Stage — этап конвейера, на котором обнаружена ошибка.
type Stage string

const (
	StageStructural   Stage = "structural"
	StageBusinessRule Stage = "business_rule"
	StageSubmission   Stage = "submission"
)

// ErrorKind — класс ошибки.
type ErrorKind string

const (
	// Ошибки уровня файла: терминальны, дальнейшие этапы не выполняются.
	KindUnsupportedFileType ErrorKind = "unsupported_file_type"
	KindUnreadableFile      ErrorKind = "unreadable_file"
	KindEmptyFile           ErrorKind = "empty_file"
	KindInvalidHeader       ErrorKind = "invalid_header"
	KindNoDataRows          ErrorKind = "no_data_rows"

	// Ошибки строк (не терминальны).
	KindFieldCountMismatch ErrorKind = "field_count_mismatch"
	KindMissingSKU         ErrorKind = "missing_sku"
	KindMissingQuantity    ErrorKind = "missing_quantity"
	KindNonIntegerQuantity ErrorKind = "non_integer_quantity"

	// Ошибки удалённых сервисов.
	KindRemoteValidationFailure ErrorKind = "remote_validation_failure"
	KindBusinessRuleViolation   ErrorKind = "business_rule_violation"
	KindSubmissionCallFailure   ErrorKind = "submission_call_failure"
	KindSubmissionRowViolation  ErrorKind = "submission_row_violation"
)

// IsFileLevel — ошибка относится ко всему файлу и прерывает обработку.
func (k ErrorKind) IsFileLevel() bool {
	switch k {
	case KindUnsupportedFileType, KindUnreadableFile, KindEmptyFile, KindInvalidHeader, KindNoDataRows:
		return true
	default:
		return false
	}
}

// Тексты ошибок, которые видит пользователь.
const (
	ReasonFileNotSupported   = "File not supported"
	ReasonFailedToRead       = "Failed to read file"
	ReasonEmptyFile          = "Empty file"
	ReasonInvalidHeader      = `Invalid header. Expected "SKU,Quantity"`
	ReasonNoDataRows         = "File must contain at least one data row"
	ReasonSKURequired        = "SKU is required"
	ReasonQuantityRequired   = "Quantity is required"
	ReasonQuantityNotInteger = "Quantity must be an integer"
	ReasonUnknownError       = "Unknown error"

	ReasonPrefixValidation = "Validation error: "
	ReasonPrefixAddToCart  = "Error adding items to cart: "
)

// RowError — ошибка, привязанная к строке файла.
// Row == 0 — номер строки неизвестен (ошибки уровня файла и синтетические ошибки вызовов).
type RowError struct {
	Row    int       `json:"row,omitempty"`
	SKU    string    `json:"sku"`
	Reason string    `json:"reason"`
	Stage  Stage     `json:"stage"`
	Kind   ErrorKind `json:"kind"`
}

// HasRow — номер строки известен.
func (e RowError) HasRow() bool { return e.Row > 0 }

// FileError — ошибка уровня файла (без номера строки).
func FileError(kind ErrorKind, reason string) RowError {
	return RowError{Reason: reason, Stage: StageStructural, Kind: kind}
}
