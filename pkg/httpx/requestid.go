package httpx

import (
	"github.com/Gunvolt24/sku_upload/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderSessionID = "X-Session-ID"
)

// RequestIDMiddleware:
// - принимает X-Request-ID от клиента или генерирует UUID
// - кладёт request_id в контекст
// - возвращает его в ответном заголовке X-Request-ID
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(HeaderRequestID, requestID)

		ctx := ctxmeta.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// SessionIDMiddleware — кладёт session_id в контекст: из заголовка X-Session-ID,
// а для маршрутов /sessions/:id — из параметра пути. Без сессии запрос не отклоняет.
func SessionIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID := SessionID(c); sessionID != "" {
			c.Request = c.Request.WithContext(ctxmeta.WithSessionID(c.Request.Context(), sessionID))
		}
		c.Next()
	}
}
