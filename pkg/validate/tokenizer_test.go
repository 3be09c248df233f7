package validate_test

import (
	"reflect"
	"testing"

	"github.com/Gunvolt24/sku_upload/pkg/validate"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []validate.Line
	}{
		{"empty", "", []validate.Line{}},
		{"only blanks", "\n  \r\n\t\n", []validate.Line{}},
		{
			name: "lf",
			in:   "SKU,Quantity\nA1,5",
			want: []validate.Line{{Number: 1, Text: "SKU,Quantity"}, {Number: 2, Text: "A1,5"}},
		},
		{
			name: "crlf and trailing newline",
			in:   "SKU,Quantity\r\nA1,5\r\n",
			want: []validate.Line{{Number: 1, Text: "SKU,Quantity"}, {Number: 2, Text: "A1,5"}},
		},
		{
			name: "blank lines keep numbering",
			in:   "SKU,Quantity\n\n  A1,5  \n\nA2,7",
			want: []validate.Line{{Number: 1, Text: "SKU,Quantity"}, {Number: 3, Text: "A1,5"}, {Number: 5, Text: "A2,7"}},
		},
		{
			name: "leading bom",
			in:   "\ufeffSKU,Quantity\r\nA1,5\r\n",
			want: []validate.Line{{Number: 1, Text: "SKU,Quantity"}, {Number: 2, Text: "A1,5"}},
		},
		{"bom only", "\ufeff", []validate.Line{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validate.Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Tokenize(%q): want %+v, got %+v", tt.in, tt.want, got)
			}
		})
	}
}

func TestParseLine(t *testing.T) {
	c := validate.ParseLine(validate.Line{Number: 4, Text: " A1 , 5 "})
	if c.Line != 4 || c.FieldCount() != 2 {
		t.Fatalf("unexpected candidate: %+v", c)
	}
	if c.SKU() != "A1" || c.RawQuantity() != "5" {
		t.Fatalf("fields must be trimmed: sku=%q qty=%q", c.SKU(), c.RawQuantity())
	}

	short := validate.ParseLine(validate.Line{Number: 6, Text: "A5"})
	if short.FieldCount() != 1 || short.RawQuantity() != "" {
		t.Fatalf("missing field must be empty: %+v", short)
	}

	long := validate.ParseLine(validate.Line{Number: 7, Text: "A1,5,extra"})
	if long.FieldCount() != 3 {
		t.Fatalf("want 3 fields, got %d", long.FieldCount())
	}
}
