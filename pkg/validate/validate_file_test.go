package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gunvolt24/sku_upload/internal/domain"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestValidateFile_Report_OK(t *testing.T) {
	path := writeTemp(t, "items.csv", "SKU,Quantity\nA1,5\nA2,7\n")

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), NewCSVValidator(), path, OutputReport, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "2 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}

	var got FileReport
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid report json: %v", err)
	}
	if got.File != "items.csv" || len(got.Rows) != 2 || len(got.Errors) != 0 {
		t.Fatalf("unexpected report: %+v", got)
	}
	if got.EligibleCSV != "SKU,Quantity\nA1,5\nA2,7\n" {
		t.Fatalf("unexpected eligible csv: %q", got.EligibleCSV)
	}
}

func TestValidateFile_Report_RowErrors(t *testing.T) {
	path := writeTemp(t, "items.csv", "SKU,Quantity\nA1,5\nA2,-3\nA3,x\n,7\nA5")

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), NewCSVValidator(), path, OutputReport, &out)
	if !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("want ErrInvalidFile, got %v", err)
	}
	if summary != "2 valid / 3 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}

	var got FileReport
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid report json: %v", err)
	}
	if len(got.Rows) != 5 || len(got.Errors) != 3 {
		t.Fatalf("want 5 rows and 3 errors, got %d/%d", len(got.Rows), len(got.Errors))
	}
	if got.Errors[0].Row != 4 || got.Errors[1].Row != 5 || got.Errors[2].Row != 6 {
		t.Fatalf("unexpected error rows: %+v", got.Errors)
	}
}

func TestValidateFile_Eligible(t *testing.T) {
	path := writeTemp(t, "items.csv", "sku , quantity\r\nA1,5\r\nA2,x\r\n")

	var out bytes.Buffer
	_, err := ValidateFile(context.Background(), NewCSVValidator(), path, OutputEligible, &out)
	if !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("want ErrInvalidFile, got %v", err)
	}
	if out.String() != "SKU,Quantity\nA1,5\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestValidateFile_FileLevelError(t *testing.T) {
	path := writeTemp(t, "items.csv", "Name,Count\nA1,5\n")

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), NewCSVValidator(), path, OutputReport, &out)
	if err == nil || !strings.Contains(err.Error(), domain.ReasonInvalidHeader) {
		t.Fatalf("want invalid header error, got %v", err)
	}
	if summary != "0 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
}

func TestValidateFile_UnsupportedType(t *testing.T) {
	path := writeTemp(t, "items.txt", "SKU,Quantity\nA1,5\n")

	var out bytes.Buffer
	_, err := ValidateFile(context.Background(), NewCSVValidator(), path, OutputReport, &out)
	if err == nil || !strings.Contains(err.Error(), domain.ReasonFileNotSupported) {
		t.Fatalf("want unsupported file error, got %v", err)
	}
}

func TestValidateReader_DeclaredMediaType(t *testing.T) {
	file := domain.UploadFile{
		Name:      "stdin",
		MediaType: "text/csv; charset=utf-8",
		Body:      strings.NewReader("SKU,Quantity\nA1,5\n"),
	}

	var out bytes.Buffer
	summary, err := ValidateReader(context.Background(), NewCSVValidator(), file, OutputEligible, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
}

func TestValidateFile_OpenError(t *testing.T) {
	var out bytes.Buffer
	_, err := ValidateFile(context.Background(), NewCSVValidator(), "no-such-file.csv", OutputReport, &out)
	if err == nil {
		t.Fatalf("expected open error")
	}
}

func TestValidateFile_UnsupportedFormat(t *testing.T) {
	path := writeTemp(t, "items.csv", "SKU,Quantity\nA1,5\n")

	var out bytes.Buffer
	_, err := ValidateFile(context.Background(), NewCSVValidator(), path, OutputFormat("yaml"), &out)
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got: %v", err)
	}
}
