package profile

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
	public := r.Group("/public/profiles")
	{
		public.GET("/:slug", middleware.RateLimitByIP(10, 30), h.GetPublic)
	}

	profiles := r.Group("/profiles")
	profiles.Use(middleware.Auth(tokens))
	{
		profiles.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(enforcer, "profile", "read"),
			h.List,
		)
		profiles.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(enforcer, "profile", "create"),
			middleware.Idempotency(rdb),
			h.Create,
		)
		profiles.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(enforcer, "profile", "read"),
			h.GetByID,
		)
		profiles.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.Authorize(enforcer, "profile", "update"),
			h.Update,
		)
		profiles.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(enforcer, "profile", "delete"),
			h.Delete,
		)
		profiles.POST("/:id/publish",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(enforcer, "profile", "publish"),
			h.Publish,
		)
		profiles.POST("/:id/unpublish",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(enforcer, "profile", "publish"),
			h.Unpublish,
		)
	}
}
