package tenant

import (
	"time"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/plan"

	"github.com/google/uuid"
)

// Tenant is a planner workspace; every profile and guest belongs to one.
type Tenant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Plan      plan.Tier `gorm:"type:varchar(20);not null;default:'free'"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Tenant) TableName() string {
	return "tenants"
}

type Usage struct {
	Profiles int64 `json:"profiles"`
	Guests   int64 `json:"guests"`
}
