// router/router.go
package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aegisd/aegis/controller"
	"github.com/aegisd/aegis/db"
	"github.com/aegisd/aegis/metrics"
	"github.com/aegisd/aegis/middleware"
)

// SetupRouter wires middleware and registers all API routes.
func SetupRouter(controllers *controller.Controllers, store *db.RedisStore, rateLimit int, rateWindow time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimiter(store, rateLimit, rateWindow))

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		controllers.Attribute.RegisterRoutes(v1)
		controllers.User.RegisterRoutes(v1)
		controllers.Policy.RegisterRoutes(v1)
		controllers.Resource.RegisterRoutes(v1)
		controllers.Authorization.RegisterRoutes(v1)
	}

	return r
}
