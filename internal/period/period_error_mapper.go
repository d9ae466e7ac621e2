package period

import (
	"errors"

	perioderrors "go-payroll/internal/period/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return perioderrors.ErrPeriodNotFound
	}

	return err
}
