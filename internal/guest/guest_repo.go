package guest

import (
	"context"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -destination=mock/guest_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ProfileExists(ctx context.Context, tenantID, profileID string) (bool, error)
	LockProfile(ctx context.Context, tenantID, profileID string) error
	Headcount(ctx context.Context, profileID string) (int, error)
	FindAllByProfile(ctx context.Context, tenantID, profileID string, q ListQuery) ([]Guest, error)
	FindByID(ctx context.Context, tenantID, profileID, id string) (*Guest, error)
	Create(ctx context.Context, g *Guest) error
	Update(ctx context.Context, g *Guest) error
	Delete(ctx context.Context, tenantID, profileID, id string) error
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

func (r *repository) ProfileExists(ctx context.Context, tenantID, profileID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("profiles").
		Scopes(tenant.Scope(tenantID)).
		Where("id = ? AND deleted_at IS NULL", profileID).
		Count(&n).Error
	return n > 0, err
}

// LockProfile takes a row lock on the profile so concurrent guest additions
// see each other's headcount. Returns gorm.ErrRecordNotFound when missing.
func (r *repository) LockProfile(ctx context.Context, tenantID, profileID string) error {
	var row struct{ ID string }
	return r.db.WithContext(ctx).
		Table("profiles").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Scopes(tenant.Scope(tenantID)).
		Where("id = ? AND deleted_at IS NULL", profileID).
		Take(&row).Error
}

func (r *repository) Headcount(ctx context.Context, profileID string) (int, error) {
	var total int
	err := r.db.WithContext(ctx).
		Model(&Guest{}).
		Where("profile_id = ?", profileID).
		Select("COALESCE(SUM(party_size), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repository) FindAllByProfile(ctx context.Context, tenantID, profileID string, q ListQuery) ([]Guest, error) {
	query := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("profile_id = ?", profileID)
	if q.RSVP != "" {
		query = query.Where("rsvp = ?", q.RSVP)
	}

	var guests []Guest
	err := query.Order("name ASC").Find(&guests).Error
	return guests, err
}

func (r *repository) FindByID(ctx context.Context, tenantID, profileID, id string) (*Guest, error) {
	var g Guest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("profile_id = ?", profileID).
		First(&g, "id = ?", id).Error
	return &g, err
}

func (r *repository) Create(ctx context.Context, g *Guest) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) Update(ctx context.Context, g *Guest) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *repository) Delete(ctx context.Context, tenantID, profileID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("profile_id = ?", profileID).
		Delete(&Guest{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
