package guest

import (
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	tokens middleware.TokenParser,
	enforcer middleware.Enforcer,
	rdb *redis.Client,
) {
	guests := r.Group("/profiles/:id/guests")
	guests.Use(middleware.Auth(tokens))
	{
		guests.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(enforcer, "guest", "read"),
			h.List,
		)
		guests.POST("",
			middleware.RateLimitByUser(2, 10),
			middleware.Authorize(enforcer, "guest", "create"),
			middleware.Idempotency(rdb),
			h.Create,
		)
		guests.PUT("/:guestId",
			middleware.RateLimitByUser(2, 10),
			middleware.Authorize(enforcer, "guest", "update"),
			h.Update,
		)
		guests.DELETE("/:guestId",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(enforcer, "guest", "delete"),
			h.Delete,
		)
	}
}
