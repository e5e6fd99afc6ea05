package profile

import (
	"errors"

	profileerrors "github.com/WhitworthLegacy/carnetmariage-sub001/internal/profile/errors"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return profileerrors.ErrProfileNotFound
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return profileerrors.ErrSlugTaken
	}

	// slug is the only unique column a caller controls
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return profileerrors.ErrSlugTaken
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return apperror.Database(err)
}
