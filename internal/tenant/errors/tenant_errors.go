package tenanterrors

import "github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"

var (
	ErrTenantNotFound = apperror.New(
		apperror.KindNotFound,
		"Workspace not found",
	)

	ErrInvalidTenantID = apperror.New(
		apperror.KindValidationError,
		"Invalid workspace ID",
	)

	ErrTenantInactive = apperror.New(
		apperror.KindForbidden,
		"This workspace has been deactivated",
	)
)
