package guest

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RSVPPending  = "pending"
	RSVPAccepted = "accepted"
	RSVPDeclined = "declined"
)

type Guest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProfileID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(120);not null"`
	Email      string    `gorm:"type:varchar(255)"`
	RSVP       string    `gorm:"column:rsvp;type:varchar(10);not null;default:'pending'"`
	PartySize  int       `gorm:"not null;default:1"`
	TableLabel string    `gorm:"column:table_label;type:varchar(40)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}
