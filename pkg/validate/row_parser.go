package validate

import "strings"

// FieldDelimiter — разделитель полей.
const FieldDelimiter = ","

// RowCandidate — строка данных, разбитая на поля; количество и типы полей ещё не проверены.
type RowCandidate struct {
	Line   int
	Fields []string
}

// ParseLine — разбивает строку данных на поля.
// Строки с недостающими полями не отбрасываются: валидатор сообщит точное число полей.
func ParseLine(line Line) RowCandidate {
	return RowCandidate{
		Line:   line.Number,
		Fields: strings.Split(line.Text, FieldDelimiter),
	}
}

// FieldCount — сколько полей получилось после разбиения.
func (c RowCandidate) FieldCount() int { return len(c.Fields) }

// SKU — первое поле (trim) или "", если его нет.
func (c RowCandidate) SKU() string { return c.field(0) }

// RawQuantity — второе поле (trim) или "", если его нет.
func (c RowCandidate) RawQuantity() string { return c.field(1) }

func (c RowCandidate) field(i int) string {
	if i >= len(c.Fields) {
		return ""
	}
	return strings.TrimSpace(c.Fields[i])
}
