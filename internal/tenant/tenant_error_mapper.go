package tenant

import (
	"errors"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"
	tenanterrors "github.com/WhitworthLegacy/carnetmariage-sub001/internal/tenant/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tenanterrors.ErrTenantNotFound
	}

	return apperror.Database(err)
}
