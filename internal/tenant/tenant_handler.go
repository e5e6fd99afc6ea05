package tenant

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
	l := zap.L().Named("tenant.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tenant.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetMe(c *gin.Context) {
	tenantID := c.GetString("tenant_id")
	h.logger.Debug("http get tenant", zap.String("tenant_id", tenantID))

	resp, err := h.service.GetOverview(c.Request.Context(), tenantID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSONOk(c, resp)
}

func (h *Handler) UpdateMe(c *gin.Context) {
	tenantID := c.GetString("tenant_id")

	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Rename(c.Request.Context(), tenantID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSONOk(c, resp)
}
