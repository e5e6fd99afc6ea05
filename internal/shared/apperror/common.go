package apperror

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound = New(
		KindNotFound,
		"Resource not found",
	)

	ErrForbidden = New(
		KindForbidden,
		"You do not have permission to access this resource",
	)

	ErrInternal = New(
		KindInternalError,
		"An unexpected error occurred",
	)

	ErrDatabase = New(
		KindDatabaseError,
		"A database error occurred",
	)

	ErrUnauthorized = New(
		KindUnauthorized,
		"Authentication is required",
	)

	ErrInvalidInput = New(
		KindValidationError,
		"The provided input is invalid",
	)

	ErrTooManyRequests = New(
		KindForbidden,
		"Too many requests, please slow down",
	)
)

func RequiredField(field string) *AppError {
	return New(KindValidationError, fmt.Sprintf("%s is required", field))
}

func InvalidField(field string) *AppError {
	return New(KindValidationError, fmt.Sprintf("%s is invalid", field))
}

// Database wraps a driver failure so its details stay in the logs.
func Database(err error) *AppError {
	return Wrap(err, KindDatabaseError, ErrDatabase.Message())
}

// From reduces any error to an AppError. Unknown errors become INTERNAL_ERROR
// with the original kept as the cause.
func From(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Wrap(err, KindInternalError, "The request was cancelled or timed out")
	}

	return Wrap(err, KindInternalError, ErrInternal.Message())
}
