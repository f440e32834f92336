package editor

import (
	"errors"

	"go-payslip/internal/shared/apperror"
)

func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.StorageUnavailable(err)
}
