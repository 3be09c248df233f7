package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/sku_upload/pkg/metrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxErrorBody — сколько байт тела ошибки читаем для message.
const maxErrorBody = 64 << 10

// NewHTTPClient — HTTP-клиент с таймаутом и otelhttp-транспортом (пропагация трейса во внешние сервисы).
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// jsonCaller — общий POST JSON → JSON для клиентов удалённых сервисов.
type jsonCaller struct {
	baseURL string
	client  *http.Client
	name    string // метка клиента в метриках
}

func newJSONCaller(baseURL string, client *http.Client, name string) jsonCaller {
	if client == nil {
		client = http.DefaultClient
	}
	return jsonCaller{baseURL: strings.TrimRight(baseURL, "/"), client: client, name: name}
}

// postJSON — один вызов без повторов; любой сбой возвращается как *CallError.
func (j jsonCaller) postJSON(ctx context.Context, op, path string, in, out any) (err error) {
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		metrics.RemoteCallDuration.WithLabelValues(j.name, outcome).Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(in)
	if err != nil {
		return &CallError{Op: op, Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, j.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &CallError{Op: op, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := j.client.Do(req)
	if err != nil {
		return &CallError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &CallError{Op: op, StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return &CallError{Op: op, StatusCode: 0, Err: errors.New("empty response body")}
		}
		return &CallError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// errorMessage — поле message (или error) из JSON-тела ошибки; "" если его нет.
func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &body) != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
