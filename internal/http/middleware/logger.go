package middleware

import (
	"time"

	"dc_inventory_server/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every handled request as a structured event. It is
// only installed when LOG_HTTP is enabled.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("http request")
	}
}
