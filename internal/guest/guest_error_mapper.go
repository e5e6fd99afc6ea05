package guest

import (
	"errors"

	guesterrors "github.com/WhitworthLegacy/carnetmariage-sub001/internal/guest/errors"
	profileerrors "github.com/WhitworthLegacy/carnetmariage-sub001/internal/profile/errors"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return guesterrors.ErrGuestNotFound
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return apperror.Database(err)
}

// mapProfileError is used where the missing row is the parent profile.
func mapProfileError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return profileerrors.ErrProfileNotFound
	}
	return mapRepositoryError(err)
}
