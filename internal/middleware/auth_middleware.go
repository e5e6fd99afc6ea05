package middleware

import (
	"strings"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/contextutil"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/response"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextUserID   = "user_id"
	ContextTenantID = "tenant_id"
	ContextRole     = "role"
)

// TokenParser is satisfied by *token.Manager.
type TokenParser interface {
	Parse(raw string) (*token.Claims, error)
}

func Auth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Abort(c, apperror.ErrUnauthorized)
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Abort(c, err)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextTenantID, claims.TenantID)
		c.Set(ContextRole, claims.Role)

		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, claims.UserID)
		ctx = contextutil.WithTenantID(ctx, claims.TenantID)
		logger := contextutil.GetLogger(ctx, zap.L()).With(
			zap.String("user_id", claims.UserID),
			zap.String("tenant_id", claims.TenantID),
		)
		ctx = contextutil.WithLogger(ctx, logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
