package auth

import (
	"net/http"
	"time"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const accessTokenCookie = "access_token"

type Handler struct {
	service      Service
	secureCookie bool
	logger       *zap.Logger
}

func NewHandler(s Service, secureCookie bool, logger ...*zap.Logger) *Handler {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &Handler{service: s, secureCookie: secureCookie, logger: l.Named("auth.handler")}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	maxAge := int(time.Until(resp.ExpiresAt).Seconds())
	h.setTokenCookie(c, resp.AccessToken, maxAge)

	response.JSONOk(c, resp)
}

func (h *Handler) Me(c *gin.Context) {
	memberID := c.GetString("user_id")
	if memberID == "" {
		response.FromError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.GetMe(c.Request.Context(), memberID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSONOk(c, resp)
}

// Logout only clears the cookie; bearer tokens expire on their own.
func (h *Handler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	response.JSONOk(c, gin.H{"logged_out": true})
}

func (h *Handler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
