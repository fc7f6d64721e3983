package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"task-reminder-bot/pkg/response"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// TelegramAuth verifies the secret token Telegram echoes back on every
// webhook delivery. When no secret is configured the check is skipped.
func (m Middleware) TelegramAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.webhookSecret == "" {
			c.Next()
			return
		}

		got := c.GetHeader(secretTokenHeader)
		// Constant-time comparison
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.webhookSecret)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.TelegramAuth: invalid secret token from %s", extractIP(c.Request))
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
