package template

import (
	"errors"

	"go-payslip/internal/shared/apperror"
	templateerrors "go-payslip/internal/template/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return templateerrors.ErrTemplateNotFound
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperror.WithCause(templateerrors.ErrIDConflict, err)
	}

	return apperror.StorageUnavailable(err)
}
