package ports

import "context"

// MessageConsumer — фоновый потребитель событий (контекст корзины из Kafka).
// Run блокируется до отмены ctx или фатальной ошибки.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
