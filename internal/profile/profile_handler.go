package profile

import (
	"strings"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("profile.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	tenantID := c.GetString("tenant_id")
	h.logger.Debug("http create profile", zap.String("tenant_id", tenantID))

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSONCreated(c, resp)
}

func (h *Handler) List(c *gin.Context) {
	tenantID := c.GetString("tenant_id")

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.List(c.Request.Context(), tenantID, q)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSONOk(c, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("tenant_id"), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSONOk(c, resp)
}

func (h *Handler) Update(c *gin.Context) {
	tenantID := c.GetString("tenant_id")
	id := c.Param("id")
	h.logger.Debug("http update profile", zap.String("tenant_id", tenantID), zap.String("profile_id", id))

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSONOk(c, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), c.GetString("tenant_id"), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.JSONOk(c, gin.H{"id": id})
}

func (h *Handler) Publish(c *gin.Context) {
	resp, err := h.service.Publish(c.Request.Context(), c.GetString("tenant_id"), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSONOk(c, resp)
}

func (h *Handler) Unpublish(c *gin.Context) {
	resp, err := h.service.Unpublish(c.Request.Context(), c.GetString("tenant_id"), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSONOk(c, resp)
}

// GetPublic serves the anonymous wedding site.
func (h *Handler) GetPublic(c *gin.Context) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))

	resp, err := h.service.GetPublic(c.Request.Context(), slug)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=60")
	response.JSONOk(c, resp)
}
