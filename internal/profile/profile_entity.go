package profile

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is a couple's wedding profile. Slugs are unique across tenants
// because they address the public page.
type Profile struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Slug          string     `gorm:"type:varchar(64);not null;uniqueIndex:uq_profiles_slug"`
	PartnerOne    string     `gorm:"type:varchar(100);not null"`
	PartnerTwo    string     `gorm:"type:varchar(100);not null"`
	WeddingDate   *time.Time `gorm:"type:date"`
	Venue         string     `gorm:"type:varchar(200)"`
	City          string     `gorm:"type:varchar(120)"`
	ContactEmail  string     `gorm:"type:varchar(255)"`
	GuestEstimate int        `gorm:"not null;default:0"`
	Language      string     `gorm:"type:varchar(2);not null;default:'fr'"`
	Story         string     `gorm:"type:text"`
	Published     bool       `gorm:"not null;default:false"`
	PublishedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
