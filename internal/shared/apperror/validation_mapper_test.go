package apperror_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	RecipientName string `json:"recipient_name" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	Slug          string `json:"slug" validate:"omitempty,slug"`
	PartySize     int    `json:"party_size" validate:"min=1,max=10"`
	RSVP          string `json:"rsvp" validate:"omitempty,oneof=pending accepted declined"`
	Date          string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	apperror.Configure(v)
	return v
}

func TestMapValidationError(t *testing.T) {
	v := newValidator()
	valid := sampleRequest{RecipientName: "Ana", PartySize: 2}

	tests := []struct {
		name    string
		mutate  func(r *sampleRequest)
		message string
	}{
		{"required", func(r *sampleRequest) { r.RecipientName = "" }, "Recipient Name is required"},
		{"email", func(r *sampleRequest) { r.Email = "not-an-email" }, "Email must be a valid email address"},
		{"slug", func(r *sampleRequest) { r.Slug = "Ana & Ben" }, "Slug may only contain lowercase letters, digits and hyphens"},
		{"min", func(r *sampleRequest) { r.PartySize = 0 }, "Party Size must be at least 1"},
		{"max", func(r *sampleRequest) { r.PartySize = 11 }, "Party Size must be at most 10"},
		{"oneof", func(r *sampleRequest) { r.RSVP = "maybe" }, "Rsvp must be one of: pending, accepted, declined"},
		{"datetime", func(r *sampleRequest) { r.Date = "20/06/2026" }, "Date must be a date in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			got := apperror.MapValidationError(v.Struct(req))

			assert.Equal(t, apperror.KindValidationError, got.Kind())
			assert.Equal(t, tt.message, got.Message())
		})
	}
}

func TestMapValidationError_JSONErrors(t *testing.T) {
	var dst sampleRequest

	syntaxErr := json.Unmarshal([]byte(`{"recipient_name":`), &dst)
	assert.Equal(t, "Request body must be valid JSON", apperror.MapValidationError(syntaxErr).Message())

	typeErr := json.Unmarshal([]byte(`{"party_size":"two"}`), &dst)
	got := apperror.MapValidationError(typeErr)
	assert.Equal(t, apperror.KindValidationError, got.Kind())
	assert.Equal(t, "Party Size must be of type int", got.Message())
}

func TestMapValidationError_Fallback(t *testing.T) {
	got := apperror.MapValidationError(errors.New("weird"))
	assert.Same(t, apperror.ErrInvalidInput, got)
}
