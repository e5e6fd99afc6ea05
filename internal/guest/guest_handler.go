package guest

import (
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
	l := zap.L().Named("guest.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("guest.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.List(c.Request.Context(), c.GetString("tenant_id"), c.Param("id"), q)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSONOk(c, resp)
}

func (h *Handler) Create(c *gin.Context) {
	tenantID := c.GetString("tenant_id")
	profileID := c.Param("id")
	h.logger.Debug("http create guest", zap.String("tenant_id", tenantID), zap.String("profile_id", profileID))

	var req GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), tenantID, profileID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSONCreated(c, resp)
}

func (h *Handler) Update(c *gin.Context) {
	var req GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.GetString("tenant_id"), c.Param("id"), c.Param("guestId"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSONOk(c, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("guestId")

	if err := h.service.Delete(c.Request.Context(), c.GetString("tenant_id"), c.Param("id"), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.JSONOk(c, gin.H{"id": id})
}
