package profile

import (
	"time"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/response"
)

const (
	DateLayout      = "2006-01-02"
	DefaultLanguage = "fr"
)

// ProfileRequest is used for both create and update. Publication state is
// changed through the publish endpoints only.
type ProfileRequest struct {
	Slug          string `json:"slug" binding:"required,min=3,max=64,slug"`
	PartnerOne    string `json:"partner_one" binding:"required,max=100"`
	PartnerTwo    string `json:"partner_two" binding:"required,max=100"`
	WeddingDate   string `json:"wedding_date" binding:"omitempty,datetime=2006-01-02"`
	Venue         string `json:"venue" binding:"max=200"`
	City          string `json:"city" binding:"max=120"`
	ContactEmail  string `json:"contact_email" binding:"omitempty,email"`
	GuestEstimate int    `json:"guest_estimate" binding:"min=0,max=5000"`
	Language      string `json:"language" binding:"omitempty,oneof=fr en nl"`
	Story         string `json:"story" binding:"max=5000"`
}

type ListQuery struct {
	Q        string `form:"q" json:"q" binding:"max=100"`
	Page     int    `form:"page" json:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" json:"page_size" binding:"omitempty,min=1,max=100"`
}

func (q ListQuery) normalized() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	return q
}

type ProfileResponse struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	PartnerOne    string     `json:"partner_one"`
	PartnerTwo    string     `json:"partner_two"`
	WeddingDate   string     `json:"wedding_date,omitempty"`
	Venue         string     `json:"venue"`
	City          string     `json:"city"`
	ContactEmail  string     `json:"contact_email"`
	GuestEstimate int        `json:"guest_estimate"`
	Language      string     `json:"language"`
	Story         string     `json:"story"`
	Published     bool       `json:"published"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ProfileListResponse = response.Page[ProfileResponse]

// PublicProfileResponse is what anonymous visitors of the wedding site see.
type PublicProfileResponse struct {
	Slug        string `json:"slug"`
	PartnerOne  string `json:"partner_one"`
	PartnerTwo  string `json:"partner_two"`
	WeddingDate string `json:"wedding_date,omitempty"`
	Venue       string `json:"venue"`
	City        string `json:"city"`
	Language    string `json:"language"`
	Story       string `json:"story"`
}
