package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"time"
)

func RequestLogger(logger outbound.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if callSid := c.Request.PostFormValue("CallSid"); callSid != "" {
			fields["call_id"] = callSid
		}

		if len(c.Errors) > 0 {
			logger.ErrorWithFields(c.Errors.Last(), "Request failed", fields)
			return
		}
		logger.DebugWithFields("Request handled", fields)
	}
}
