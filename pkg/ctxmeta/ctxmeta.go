// Пакет ctxmeta — нейтральный слой для работы с метаданными запроса,
// которые прокидываются через context.Context (request_id, run_id, session_id, trace_id).
// Идея: HTTP-слой, usecase и логгер зависят от небольшого общего пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемые типы — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyRunID     ctxKey = "run_id"
	KeySessionID ctxKey = "session_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return valueOf(ctx, KeyRequestID)
}

// WithRunID кладёт идентификатор прогона загрузки в контекст.
func WithRunID(ctx context.Context, runID string) context.Context {
	return withValue(ctx, KeyRunID, runID)
}

// RunIDFromContext достаёт run_id из контекста.
func RunIDFromContext(ctx context.Context) (string, bool) {
	return valueOf(ctx, KeyRunID)
}

// WithSessionID кладёт идентификатор сессии покупателя в контекст.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return withValue(ctx, KeySessionID, sessionID)
}

// SessionIDFromContext достаёт session_id из контекста.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	return valueOf(ctx, KeySessionID)
}

func withValue(ctx context.Context, key ctxKey, value string) context.Context {
	if ctx == nil || value == "" {
		return ctx
	}
	return context.WithValue(ctx, key, value)
}

func valueOf(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
