package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Gunvolt24/sku_upload/internal/domain"
	"github.com/Gunvolt24/sku_upload/internal/ports"
)

// OutputFormat — что писать в writer после проверки.
type OutputFormat string

const (
	// OutputReport — JSON-отчёт: строки, ошибки и годный CSV.
	OutputReport OutputFormat = "report"
	// OutputEligible — только заголовок и структурно валидные строки.
	OutputEligible OutputFormat = "eligible"
)

// FileReport — отчёт офлайн-проверки одного файла.
type FileReport struct {
	File        string            `json:"file"`
	Rows        []domain.Row      `json:"rows"`
	Errors      []domain.RowError `json:"errors"`
	EligibleCSV string            `json:"eligibleCsv"`
}

// ValidateFile — открывает файл и проверяет его как загрузку с тем же именем.
func ValidateFile(ctx context.Context, validator ports.UploadValidator, filePath string, format OutputFormat, ow io.Writer) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return ValidateReader(ctx, validator, domain.UploadFile{Name: filepath.Base(filePath), Body: file}, format, ow)
}

// ValidateReader — локальная проверка без сети: тип файла, форма, строки.
// Отчёт пишется и для невалидного файла; ошибка оборачивает ErrInvalidFile.
// Возвращает сводку "N valid / M invalid" по строкам данных.
func ValidateReader(ctx context.Context, validator ports.UploadValidator, file domain.UploadFile, format OutputFormat, ow io.Writer) (string, error) {
	var report domain.LocalReport
	if fileErr := validator.CheckFile(file); fileErr != nil {
		report.Errors = []domain.RowError{*fileErr}
	} else {
		raw, err := io.ReadAll(file.Body)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		report = validator.Validate(ctx, string(raw))
	}

	if err := writeReport(ow, file.Name, &report, format); err != nil {
		return "", err
	}

	invalid := 0
	for _, e := range report.Errors {
		if e.HasRow() {
			invalid++
		}
	}
	summary := fmt.Sprintf("%d valid / %d invalid", len(report.Rows)-invalid, invalid)
	return summary, AsError(&report)
}

func writeReport(ow io.Writer, name string, report *domain.LocalReport, format OutputFormat) error {
	switch format {
	case OutputReport, "":
		out := FileReport{
			File:        name,
			Rows:        report.Rows,
			Errors:      report.Errors,
			EligibleCSV: report.EligibleCSV,
		}
		if out.Rows == nil {
			out.Rows = []domain.Row{}
		}
		if out.Errors == nil {
			out.Errors = []domain.RowError{}
		}
		enc := json.NewEncoder(ow)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil

	case OutputEligible:
		if _, err := io.WriteString(ow, report.EligibleCSV); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
