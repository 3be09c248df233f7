package httpx

import (
	"time"

	"github.com/Gunvolt24/sku_upload/internal/ports"
	"github.com/Gunvolt24/sku_upload/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// RequestLogger — middleware для логирования HTTP-запросов.
// request_id, session_id и trace пишет сам логгер (из контекста).
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// не логируем /metrics, /ping
		switch c.FullPath() {
		case "/metrics", "/ping":
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		format := "request method=%s path=%s status=%d ip=%s duration=%s size=%d"
		args := []any{c.Request.Method, path, c.Writer.Status(), c.ClientIP(), time.Since(start), c.Writer.Size()}
		if _, ok := ctxmeta.RequestIDFromContext(ctx); !ok {
			// запрос прошёл мимо RequestIDMiddleware — хотя бы отметим это
			format += " request_id=none"
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Errorf(ctx, format, args...)
		case status >= 400:
			log.Warnf(ctx, format, args...)
		default:
			log.Infof(ctx, format, args...)
		}
	}
}
