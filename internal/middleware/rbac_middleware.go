package middleware

import (
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Enforcer is a local interface; *rbac.Enforcer satisfies it.
type Enforcer interface {
	Enforce(role, resource, action string) (bool, error)
}

// Authorize must run after Auth.
func Authorize(enforcer Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role == "" {
			response.Abort(c, apperror.ErrForbidden)
			return
		}

		allowed, err := enforcer.Enforce(role, resource, action)
		if err != nil {
			response.Abort(c, err)
			return
		}

		if !allowed {
			response.Abort(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}
