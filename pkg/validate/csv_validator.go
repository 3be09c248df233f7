package validate

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"regexp"
	"strconv"
	"strings"

	"github.com/Gunvolt24/sku_upload/internal/domain"
	"github.com/Gunvolt24/sku_upload/internal/ports"
)

// Проверка, что CSVValidator удовлетворяет интерфейсу UploadValidator.
var _ ports.UploadValidator = (*CSVValidator)(nil)

// ErrInvalidFile — базовая (sentinel error) ошибка локальной проверки файла.
var ErrInvalidFile = errors.New("csv validation failed")

const (
	// CSVMediaType — заявленный тип табличного текстового файла.
	CSVMediaType = "text/csv"
	// CSVExtension — ожидаемое расширение имени файла.
	CSVExtension = ".csv"

	expectedFields = 2
	headerSKU      = "sku"
	headerQuantity = "quantity"
	headerLine     = "SKU,Quantity"
)

// quantityPattern — необязательный минус и одна или больше цифр.
var quantityPattern = regexp.MustCompile(`^-?\d+$`)

// CSVValidator — локальная (без сети) проверка файла SKU,Quantity.
type CSVValidator struct{}

// NewCSVValidator — конструктор CSVValidator.
func NewCSVValidator() *CSVValidator { return &CSVValidator{} }

// CheckFile — проверка типа файла до чтения содержимого.
// Файл принимается, если заявлен тип text/csv или имя оканчивается на .csv.
func (v *CSVValidator) CheckFile(file domain.UploadFile) *domain.RowError {
	if isCSVMediaType(file.MediaType) || strings.HasSuffix(strings.ToLower(file.Name), CSVExtension) {
		return nil
	}
	fileErr := domain.FileError(domain.KindUnsupportedFileType, domain.ReasonFileNotSupported)
	return &fileErr
}

// Validate — проверка формы файла и каждой строки.
// Ошибка уровня файла (пустой файл, заголовок, нет строк данных) прерывает проверку: строк в отчёте нет.
// Ошибки строк не прерывают проверку: в отчёт попадают все строки, валидные и нет.
func (v *CSVValidator) Validate(_ context.Context, text string) domain.LocalReport {
	lines := Tokenize(text)
	if fileErr := checkShape(lines); fileErr != nil {
		return domain.LocalReport{Errors: []domain.RowError{*fileErr}}
	}

	dataLines := lines[1:]
	report := domain.LocalReport{Rows: make([]domain.Row, 0, len(dataLines))}

	var eligible strings.Builder
	for _, line := range dataLines {
		candidate := ParseLine(line)
		row := domain.Row{Index: candidate.Line, SKU: candidate.SKU()}

		quantity, rowErr := checkRow(candidate)
		if rowErr != nil {
			report.Errors = append(report.Errors, *rowErr)
		} else {
			row.Quantity = &quantity
			if eligible.Len() == 0 {
				eligible.WriteString(headerLine)
				eligible.WriteByte('\n')
			}
			eligible.WriteString(row.SKU)
			eligible.WriteString(FieldDelimiter)
			eligible.WriteString(strconv.Itoa(quantity))
			eligible.WriteByte('\n')
		}
		report.Rows = append(report.Rows, row)
	}
	report.EligibleCSV = eligible.String()
	return report
}

// ValidateHeader — проверка только заголовка (первая непустая строка).
// Возвращает nil, если заголовок равен "SKU,Quantity" без учёта регистра и пробелов.
func ValidateHeader(text string) *domain.RowError {
	lines := Tokenize(text)
	if len(lines) == 0 {
		fileErr := domain.FileError(domain.KindEmptyFile, domain.ReasonEmptyFile)
		return &fileErr
	}
	if !isExpectedHeader(lines[0].Text) {
		fileErr := domain.FileError(domain.KindInvalidHeader, domain.ReasonInvalidHeader)
		return &fileErr
	}
	return nil
}

// AsError — отчёт в виде ошибки (nil, если ошибок нет); оборачивает ErrInvalidFile.
func AsError(report *domain.LocalReport) error {
	if len(report.Errors) == 0 {
		return nil
	}
	first := report.Errors[0]
	if first.HasRow() {
		return fmt.Errorf("%w: row %d: %s (%d error(s))", ErrInvalidFile, first.Row, first.Reason, len(report.Errors))
	}
	return fmt.Errorf("%w: %s", ErrInvalidFile, first.Reason)
}

// checkShape — шаги 2–4: пустой файл, заголовок, наличие строк данных.
func checkShape(lines []Line) *domain.RowError {
	if len(lines) == 0 {
		fileErr := domain.FileError(domain.KindEmptyFile, domain.ReasonEmptyFile)
		return &fileErr
	}
	if !isExpectedHeader(lines[0].Text) {
		fileErr := domain.FileError(domain.KindInvalidHeader, domain.ReasonInvalidHeader)
		return &fileErr
	}
	if len(lines) < 2 {
		fileErr := domain.FileError(domain.KindNoDataRows, domain.ReasonNoDataRows)
		return &fileErr
	}
	return nil
}

// checkRow — проверки одной строки; первая неудачная проверка определяет ошибку.
func checkRow(c RowCandidate) (int, *domain.RowError) {
	rowErr := func(kind domain.ErrorKind, sku, reason string) (int, *domain.RowError) {
		return 0, &domain.RowError{Row: c.Line, SKU: sku, Reason: reason, Stage: domain.StageStructural, Kind: kind}
	}

	if c.FieldCount() != expectedFields {
		return rowErr(domain.KindFieldCountMismatch, "",
			fmt.Sprintf("Invalid number of fields. Expected %d, got %d", expectedFields, c.FieldCount()))
	}

	sku := c.SKU()
	if sku == "" {
		return rowErr(domain.KindMissingSKU, "", domain.ReasonSKURequired)
	}

	raw := c.RawQuantity()
	if raw == "" {
		return rowErr(domain.KindMissingQuantity, sku, domain.ReasonQuantityRequired)
	}
	if !quantityPattern.MatchString(raw) {
		return rowErr(domain.KindNonIntegerQuantity, sku, domain.ReasonQuantityNotInteger)
	}
	// Цифры есть, но в int не помещаются — для пользователя это тоже не целое число.
	quantity, err := strconv.Atoi(raw)
	if err != nil {
		return rowErr(domain.KindNonIntegerQuantity, sku, domain.ReasonQuantityNotInteger)
	}
	return quantity, nil
}

func isExpectedHeader(line string) bool {
	fields := strings.Split(line, FieldDelimiter)
	if len(fields) != expectedFields {
		return false
	}
	return strings.ToLower(strings.TrimSpace(fields[0])) == headerSKU &&
		strings.ToLower(strings.TrimSpace(fields[1])) == headerQuantity
}

func isCSVMediaType(mediaType string) bool {
	if mediaType == "" {
		return false
	}
	parsed, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return false
	}
	return parsed == CSVMediaType
}
