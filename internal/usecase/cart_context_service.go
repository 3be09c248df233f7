package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/sku_upload/internal/domain"
	"github.com/Gunvolt24/sku_upload/internal/ports"
)

// Проверка, что CartContextService удовлетворяет интерфейсу CartRegistrar.
var _ ports.CartRegistrar = (*CartContextService)(nil)

// CartContextService — привязка сессии к корзине (события из Kafka и HTTP).
type CartContextService struct {
	store ports.CartStore
	log   ports.Logger
}

// NewCartContextService — DI-конструктор.
func NewCartContextService(store ports.CartStore, log ports.Logger) *CartContextService {
	return &CartContextService{store: store, log: log}
}

// SaveFromMessage — сохранить событие CartSummary из Kafka (raw JSON).
// Битый JSON, лишние поля и пустые идентификаторы дают ErrInvalidCartSummary:
// такое сообщение нужно закоммитить и пропустить.
func (s *CartContextService) SaveFromMessage(ctx context.Context, raw []byte) error {
	var summary domain.CartSummary
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&summary); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", ErrInvalidCartSummary, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", ErrInvalidCartSummary)
	}

	return s.SetCart(ctx, summary.SessionID, summary.CartID)
}

// SetCart — запомнить корзину сессии.
func (s *CartContextService) SetCart(ctx context.Context, sessionID, cartID string) error {
	sessionID, cartID = strings.TrimSpace(sessionID), strings.TrimSpace(cartID)
	if sessionID == "" || cartID == "" {
		s.log.Warnf(ctx, "cart summary rejected: empty session or cart id")
		return fmt.Errorf("%w: session and cart id are required", ErrInvalidCartSummary)
	}

	if err := s.store.SetCart(ctx, sessionID, cartID); err != nil {
		s.log.Errorf(ctx, "store.SetCart failed session=%s err=%v", sessionID, err)
		return fmt.Errorf("failed to save cart: %w", err)
	}
	s.log.Infof(ctx, "cart registered session=%s cart=%s", sessionID, cartID)
	return nil
}
