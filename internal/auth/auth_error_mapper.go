package auth

import (
	"errors"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"

	"gorm.io/gorm"
)

// mapLookupError turns a failed member lookup into notFound, or a database
// error for anything else.
func mapLookupError(err error, notFound *apperror.AppError) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	return apperror.Database(err)
}

