package auth

import (
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens middleware.TokenParser) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", middleware.Auth(tokens), middleware.RateLimitByUser(2, 5), handler.Me)
	}
}
