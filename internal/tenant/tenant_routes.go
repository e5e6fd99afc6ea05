package tenant

import (
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	tokens middleware.TokenParser,
	enforcer middleware.Enforcer,
) {
	t := r.Group("/tenant")
	t.Use(middleware.Auth(tokens))
	{
		t.GET("",
			middleware.RateLimitByUser(2, 10),
			middleware.Authorize(enforcer, "tenant", "read"),
			h.GetMe,
		)
		t.PUT("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(enforcer, "tenant", "update"),
			h.UpdateMe,
		)
	}
}
