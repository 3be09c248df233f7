package clients

import (
	"fmt"
	"net/http"
)

// CallError — сбой вызова удалённого сервиса (сеть, статус не 2xx, битый ответ).
// Найденные сервисом ошибки строк сюда не относятся: они приходят в теле успешного ответа.
type CallError struct {
	Op         string // validate | add_items
	StatusCode int    // 0 — ответа не было
	Message    string // message из тела ошибки, если сервис его прислал
	Err        error
}

func (e *CallError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": call failed"
	}
}

func (e *CallError) Unwrap() error { return e.Err }

// Detail — текст для пользователя: message от сервиса, иначе текст статуса.
// Транспортная ошибка (адрес, dial) в отчёт не попадает, только в лог через Error.
// Пустая строка — подробностей нет.
func (e *CallError) Detail() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.StatusCode != 0:
		return http.StatusText(e.StatusCode)
	default:
		return ""
	}
}
