package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/auth_repo_mock.go -package=mock . Repository
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Member, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Member, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Member, error) {
	var m Member
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m).Error
	return &m, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Member, error) {
	var m Member
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}
