package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/sku_upload/pkg/metrics"
)

// evictLRU — удаляет сессию, к которой дольше всего не обращались.
func (c *CartCache) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *CartCache) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(c.index, ent.sessionID)
	}
	c.ll.Remove(elem)
}

func (c *CartCache) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func (c *CartCache) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — вычищает устаревшие записи с хвоста до первой актуальной.
func (c *CartCache) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for back := c.ll.Back(); back != nil; back = c.ll.Back() {
		ent, ok := back.Value.(*entry)
		if ok && !now.After(ent.expiresAt) {
			return
		}
		c.removeElement(back)
		if ok {
			metrics.CacheOps.WithLabelValues("expired").Inc()
		}
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}
