package tenant

import "github.com/WhitworthLegacy/carnetmariage-sub001/internal/plan"

type TenantResponse struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Plan     plan.Tier   `json:"plan"`
	Limits   plan.Limits `json:"limits"`
	Usage    Usage       `json:"usage"`
	IsActive bool        `json:"is_active"`
}

type UpdateTenantRequest struct {
	Name string `json:"name" binding:"required,min=2,max=150"`
}
