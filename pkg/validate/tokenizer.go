package validate

import "strings"

// Line — непустая строка исходного текста и её номер (1-based) в исходной последовательности строк.
// Пустые строки занимают номер, но в результат не попадают.
type Line struct {
	Number int
	Text   string
}

// utf8BOM — метка порядка байтов, с которой начинаются выгрузки "CSV UTF-8" из Excel.
const utf8BOM = "\ufeff"

// Tokenize — разбивает текст на строки (\n и \r\n), отбрасывает пустые после trim.
// BOM в начале текста отбрасывается.
// Для пустого ввода возвращает пустой срез, ошибок не бывает.
func Tokenize(text string) []Line {
	text = strings.TrimPrefix(text, utf8BOM)
	rawLines := strings.Split(text, "\n")
	lines := make([]Line, 0, len(rawLines))
	for i, raw := range rawLines {
		trimmed := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if trimmed == "" {
			continue
		}
		lines = append(lines, Line{Number: i + 1, Text: trimmed})
	}
	return lines
}
