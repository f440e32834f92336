package payslip

import (
	"errors"

	paysliperrors "go-payslip/internal/payslip/errors"
	"go-payslip/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return paysliperrors.ErrPayslipNotFound
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperror.WithCause(paysliperrors.ErrIDConflict, err)
		case "23514":
			return apperror.WithCause(paysliperrors.ErrNegativeAmount, err)
		}
	}

	return apperror.StorageUnavailable(err)
}
