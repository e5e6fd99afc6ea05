package tenant

import (
	"context"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/plan"
	tenanterrors "github.com/WhitworthLegacy/carnetmariage-sub001/internal/tenant/errors"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/tenant_service_mock.go -package=mock . Service
type Service interface {
	GetOverview(ctx context.Context, tenantID string) (*TenantResponse, error)
	Rename(ctx context.Context, tenantID string, req UpdateTenantRequest) (*TenantResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetOverview(ctx context.Context, tenantID string) (*TenantResponse, error) {
	t, err := s.load(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	usage, err := s.repo.CountUsage(ctx, tenantID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToResponse(t, usage), nil
}

func (s *service) Rename(ctx context.Context, tenantID string, req UpdateTenantRequest) (*TenantResponse, error) {
	t, err := s.load(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if !t.IsActive {
		return nil, tenanterrors.ErrTenantInactive
	}

	t.Name = req.Name
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, mapRepositoryError(err)
	}

	usage, err := s.repo.CountUsage(ctx, tenantID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToResponse(t, usage), nil
}

func (s *service) load(ctx context.Context, tenantID string) (*Tenant, error) {
	id, err := uuid.Parse(tenantID)
	if err != nil {
		return nil, tenanterrors.ErrInvalidTenantID
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return t, nil
}

func mapToResponse(t *Tenant, usage Usage) *TenantResponse {
	return &TenantResponse{
		ID:       t.ID.String(),
		Name:     t.Name,
		Plan:     t.Plan,
		Limits:   plan.LimitsFor(t.Plan),
		Usage:    usage,
		IsActive: t.IsActive,
	}
}
