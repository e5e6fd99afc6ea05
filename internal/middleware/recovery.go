package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/contextutil"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic into an INTERNAL_ERROR envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				contextutil.GetLogger(c.Request.Context(), zap.L()).Error("panic",
					zap.Any("reason", r),
					zap.ByteString("stack", debug.Stack()),
					zap.String("method", c.Request.Method),
					zap.String("path", c.FullPath()),
				)
				if c.Writer.Written() {
					c.Abort()
					return
				}
				response.AbortWithStatus(c, apperror.ErrInternal, http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

// NoRoute answers unknown paths with a NOT_FOUND envelope.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.AbortWithStatus(c, apperror.New(apperror.KindNotFound, "Route not found"), http.StatusNotFound)
	}
}

// NoMethod answers known paths hit with the wrong verb.
func NoMethod() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.AbortWithStatus(c, apperror.New(apperror.KindNotFound, "Method not allowed on this route"), http.StatusMethodNotAllowed)
	}
}
