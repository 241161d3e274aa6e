// middleware/rate_limiter.go
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aegisd/aegis/db"
	logger "github.com/aegisd/aegis/logging"
	"github.com/aegisd/aegis/util"
)

// RateLimiter enforces a sliding-window request limit per client IP.
func RateLimiter(store *db.RedisStore, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := store.RateLimit(c, c.ClientIP(), limit, window)
		if err != nil {
			// Rate limiting is best effort; let the request through.
			logger.Warn("rate limit check failed", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			util.RespondWithError(c, http.StatusTooManyRequests, "Rate limit exceeded", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
