package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/sku_upload/internal/ports"
	"github.com/Gunvolt24/sku_upload/pkg/metrics"
)

// Проверка, что CartCache удовлетворяет интерфейсу CartStore.
var _ ports.CartStore = (*CartCache)(nil)

type entry struct {
	sessionID string
	cartID    string
	expiresAt time.Time
}

// CartCache — контекст корзины в памяти процесса: sessionID → cartID, LRU с TTL.
// ttl <= 0 — записи не устаревают.
type CartCache struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewCartCache(capacity int, ttl time.Duration) *CartCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &CartCache{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// CartID — корзина сессии; обращение продлевает TTL.
func (c *CartCache) CartID(_ context.Context, sessionID string) (string, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[sessionID]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return "", false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return "", false
	}
	c.ll.MoveToFront(elem)
	ent.expiresAt = c.expiryFrom(now)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return ent.cartID, true
}

// SetCart — запомнить или заменить корзину сессии.
func (c *CartCache) SetCart(_ context.Context, sessionID, cartID string) error {
	if sessionID == "" || cartID == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[sessionID]; ok {
		ent := elem.Value.(*entry)
		ent.cartID = cartID
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		sessionID: sessionID,
		cartID:    cartID,
		expiresAt: c.expiryFrom(now),
	})
	c.index[sessionID] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Len — число сессий в кэше (включая ещё не вычищенные устаревшие).
func (c *CartCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
