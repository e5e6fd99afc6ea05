package autherrors

import "github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"

var (
	ErrInvalidCredentials = apperror.New(
		apperror.KindUnauthorized,
		"Invalid email or password",
	)

	ErrMemberNotFound = apperror.New(
		apperror.KindUnauthorized,
		"Account no longer exists",
	)

	ErrMemberInactive = apperror.New(
		apperror.KindForbidden,
		"This account has been deactivated",
	)

	ErrInvalidMemberID = apperror.New(
		apperror.KindUnauthorized,
		"Invalid account ID in token",
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.KindInternalError,
		"Could not sign the access token",
	)
)
