package rbac

import (
	"sort"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PolicyReader is what the handler needs from *Enforcer.
type PolicyReader interface {
	Enforce(role, resource, action string) (bool, error)
	Permissions(role string) ([]string, error)
}

type Handler struct {
	policies PolicyReader
	logger   *zap.Logger
}

func NewHandler(policies PolicyReader, logger ...*zap.Logger) *Handler {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &Handler{policies: policies, logger: l.Named("rbac.handler")}
}

// Check lets the frontend ask whether the caller may perform an action before
// showing the control for it.
func (h *Handler) Check(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	role := c.GetString("role")
	allowed, err := h.policies.Enforce(role, req.Resource, req.Action)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.logger.Debug("rbac check",
		zap.String("role", role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	response.JSONOk(c, CheckResponse{Allowed: allowed})
}

func (h *Handler) Permissions(c *gin.Context) {
	role := c.GetString("role")

	perms, err := h.policies.Permissions(role)
	if err != nil {
		response.FromError(c, err)
		return
	}
	sort.Strings(perms)

	response.JSONOk(c, PermissionsResponse{Role: role, Permissions: perms})
}
