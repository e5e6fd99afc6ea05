package profileerrors

import "github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"

var (
	ErrProfileNotFound = apperror.New(
		apperror.KindNotFound,
		"Profile not found",
	)

	ErrInvalidProfileID = apperror.New(
		apperror.KindValidationError,
		"Invalid profile ID",
	)

	ErrSlugTaken = apperror.New(
		apperror.KindConflict,
		"This slug is already taken",
	)

	ErrInvalidWeddingDate = apperror.New(
		apperror.KindValidationError,
		"Wedding Date must be a date in YYYY-MM-DD format",
	)
)
