package guesterrors

import "github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"

var (
	ErrGuestNotFound = apperror.New(
		apperror.KindNotFound,
		"Guest not found",
	)

	ErrInvalidGuestID = apperror.New(
		apperror.KindValidationError,
		"Invalid guest ID",
	)
)
