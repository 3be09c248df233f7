package httpx

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClampInt — ограничение значения v в диапазоне [min, max].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseLimitOffset - читает limit/offset из query с дефолтами и границами.
func ParseLimitOffset(c *gin.Context, defaultLimit, maxLimit int) (limit, offset int) {
	limit = defaultLimit
	if v, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit))); err == nil {
		limit = ClampInt(v, 1, maxLimit)
	}
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		offset = v
	}
	return
}

// SessionID — идентификатор сессии покупателя: заголовок X-Session-ID,
// иначе параметр пути :id у маршрутов /sessions/:id/...
func SessionID(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader(HeaderSessionID)); v != "" {
		return v
	}
	if strings.HasPrefix(c.FullPath(), "/sessions/:id") {
		return strings.TrimSpace(c.Param("id"))
	}
	return ""
}
