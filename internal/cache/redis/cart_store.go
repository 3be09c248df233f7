package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/sku_upload/internal/ports"
	"github.com/Gunvolt24/sku_upload/pkg/metrics"
	goredis "github.com/redis/go-redis/v9"
)

// Проверка, что CartStore удовлетворяет интерфейсу ports.CartStore.
var _ ports.CartStore = (*CartStore)(nil)

const keyPrefix = "upload:cart:session:"

// CartStore — контекст корзины в Redis (общий для нескольких реплик сервиса).
type CartStore struct {
	client *goredis.Client
	ttl    time.Duration
	log    ports.Logger
}

// NewClient — клиент Redis с проверкой соединения.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// NewCartStore — ttl <= 0 означает хранение без срока.
func NewCartStore(client *goredis.Client, ttl time.Duration, log ports.Logger) *CartStore {
	return &CartStore{client: client, ttl: ttl, log: log}
}

// CartID — ошибка Redis считается промахом: без корзины прогон просто не отправляет позиции.
func (s *CartStore) CartID(ctx context.Context, sessionID string) (string, bool) {
	cartID, err := s.client.Get(ctx, key(sessionID)).Result()
	if errors.Is(err, goredis.Nil) {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return "", false
	}
	if err != nil {
		s.log.Warnf(ctx, "redis get cart failed session=%s err=%v", sessionID, err)
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return "", false
	}
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cartID, true
}

func (s *CartStore) SetCart(ctx context.Context, sessionID, cartID string) error {
	ttl := s.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, key(sessionID), cartID, ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}
	return nil
}

func key(sessionID string) string { return keyPrefix + sessionID }
