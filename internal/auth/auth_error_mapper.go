package auth

import (
	"errors"

	autherrors "go-payslip/internal/auth/errors"
	"go-payslip/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return autherrors.ErrEmailAlreadyRegistered
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return autherrors.ErrEmailAlreadyRegistered
	}
	return apperror.StorageUnavailable(err)
}

func mapLookupError(err error, notFound *apperror.AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return apperror.StorageUnavailable(err)
}
