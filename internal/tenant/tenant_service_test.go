package tenant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/plan"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/tenant"
	tenanterrors "github.com/WhitworthLegacy/carnetmariage-sub001/internal/tenant/errors"
	tenantMock "github.com/WhitworthLegacy/carnetmariage-sub001/internal/tenant/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestService_GetOverview(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := tenantMock.NewMockRepository(ctrl)
	service := tenant.NewService(mockRepo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(&tenant.Tenant{
			ID:       id,
			Name:     "Atelier Blanc",
			Plan:     plan.TierPremium,
			IsActive: true,
		}, nil)
		mockRepo.EXPECT().CountUsage(ctx, id.String()).Return(tenant.Usage{Profiles: 2, Guests: 140}, nil)

		resp, err := service.GetOverview(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, "Atelier Blanc", resp.Name)
		assert.Equal(t, plan.LimitsFor(plan.TierPremium), resp.Limits)
		assert.Equal(t, int64(140), resp.Usage.Guests)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := service.GetOverview(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, tenanterrors.ErrInvalidTenantID)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.GetOverview(ctx, id.String())
		assert.ErrorIs(t, err, tenanterrors.ErrTenantNotFound)
	})

	t.Run("usage query fails", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(&tenant.Tenant{ID: id, IsActive: true}, nil)
		mockRepo.EXPECT().CountUsage(ctx, id.String()).Return(tenant.Usage{}, errors.New("connection refused"))

		_, err := service.GetOverview(ctx, id.String())

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.KindDatabaseError, appErr.Kind())
	})
}

func TestService_Rename(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := tenantMock.NewMockRepository(ctrl)
	service := tenant.NewService(mockRepo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(&tenant.Tenant{ID: id, Name: "Old", Plan: plan.TierFree, IsActive: true}, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, tn *tenant.Tenant) error {
			assert.Equal(t, "Maison Lune", tn.Name)
			return nil
		})
		mockRepo.EXPECT().CountUsage(ctx, id.String()).Return(tenant.Usage{}, nil)

		resp, err := service.Rename(ctx, id.String(), tenant.UpdateTenantRequest{Name: "Maison Lune"})

		assert.NoError(t, err)
		assert.Equal(t, "Maison Lune", resp.Name)
	})

	t.Run("inactive workspace", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(&tenant.Tenant{ID: id, IsActive: false}, nil)

		_, err := service.Rename(ctx, id.String(), tenant.UpdateTenantRequest{Name: "Maison Lune"})
		assert.ErrorIs(t, err, tenanterrors.ErrTenantInactive)
	})
}
