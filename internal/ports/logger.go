package ports

import "context"

// Logger — минимальный контракт логгера для внешних слоёв.
// Реализация сама достаёт из ctx request_id, run_id, session_id и trace.
type Logger interface {
	Debugf(ctx context.Context, format string, args ...any) // Debugf — детали этапов конвейера.
	Infof(ctx context.Context, format string, args ...any)  // Infof — информационные сообщения.
	Warnf(ctx context.Context, format string, args ...any)  // Warnf — предупреждения.
	Errorf(ctx context.Context, format string, args ...any) // Errorf — ошибки.
}
