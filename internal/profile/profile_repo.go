package profile

import (
	"context"
	"strings"
	"time"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/profile_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, p *Profile) error
	CountByTenant(ctx context.Context, tenantID string) (int64, error)
	FindAllByTenant(ctx context.Context, tenantID string, q ListQuery) ([]Profile, int64, error)
	FindByIDAndTenant(ctx context.Context, tenantID, id string) (*Profile, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, tenantID, id string) error
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

func (r *repository) Create(ctx context.Context, p *Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Profile{}).
		Scopes(tenant.Scope(tenantID)).
		Count(&n).Error
	return n, err
}

func (r *repository) FindAllByTenant(ctx context.Context, tenantID string, q ListQuery) ([]Profile, int64, error) {
	q = q.normalized()

	query := r.db.WithContext(ctx).
		Model(&Profile{}).
		Scopes(tenant.Scope(tenantID))

	if term := strings.TrimSpace(q.Q); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		query = query.Where(
			"LOWER(partner_one) LIKE ? OR LOWER(partner_two) LIKE ? OR slug LIKE ? OR LOWER(city) LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []Profile
	err := query.
		Order("created_at DESC").
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&profiles).Error
	return profiles, total, err
}

func (r *repository) FindByIDAndTenant(ctx context.Context, tenantID, id string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindPublishedBySlug(ctx context.Context, slug string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).
		Where("slug = ? AND published", slug).
		First(&p).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete soft-deletes the profile and its guest list.
func (r *repository) Delete(ctx context.Context, tenantID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Delete(&Profile{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return r.db.WithContext(ctx).
		Table("guests").
		Where("profile_id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now().UTC()).Error
}
