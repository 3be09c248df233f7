package ports

import "context"

// CartIDProvider — источник идентификатора корзины для сессии.
// (cartID, true) — корзина известна, ("", false) — нет.
type CartIDProvider interface {
	CartID(ctx context.Context, sessionID string) (string, bool)
}

// CartStore — хранилище контекста корзины.
// Требования к реализации: потокобезопасность.
type CartStore interface {
	CartIDProvider
	SetCart(ctx context.Context, sessionID, cartID string) error
}
