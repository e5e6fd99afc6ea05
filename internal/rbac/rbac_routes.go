package rbac

import (
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens middleware.TokenParser) {
	group := r.Group("/rbac")
	group.Use(middleware.Auth(tokens))
	{
		group.GET("/permissions", handler.Permissions)
		group.POST("/check", handler.Check)
	}
}
