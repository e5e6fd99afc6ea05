package tenant

import (
	"context"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/plan"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -destination=mock/tenant_repo_mock.go -package=mock . Repository
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	Update(ctx context.Context, tenant *Tenant) error
	GetPlan(ctx context.Context, tenantID string) (plan.Tier, error)
	CountUsage(ctx context.Context, tenantID string) (Usage, error)
	WithTx(tx *gorm.DB) Repository
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	var t Tenant
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) Update(ctx context.Context, t *Tenant) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// GetPlan locks the tenant row so limit checks inside one transaction are
// serialized per tenant.
func (r *repository) GetPlan(ctx context.Context, tenantID string) (plan.Tier, error) {
	var t Tenant
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("plan").
		Where("id = ? AND is_active", tenantID).
		First(&t).Error
	return t.Plan, err
}

func (r *repository) CountUsage(ctx context.Context, tenantID string) (Usage, error) {
	var u Usage
	err := r.db.WithContext(ctx).
		Table("profiles").
		Scopes(Scope(tenantID)).
		Where("deleted_at IS NULL").
		Count(&u.Profiles).Error
	if err != nil {
		return Usage{}, err
	}

	err = r.db.WithContext(ctx).
		Table("guests").
		Scopes(Scope(tenantID)).
		Where("deleted_at IS NULL").
		Select("COALESCE(SUM(party_size), 0)").
		Scan(&u.Guests).Error
	return u, err
}
