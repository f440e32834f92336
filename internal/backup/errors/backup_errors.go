package backuperrors

import (
	"go-payslip/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidFormat = apperror.New(
		apperror.CodeInvalidFormat,
		"Import file must contain payslips and templates arrays",
		http.StatusBadRequest,
	)
	ErrUnsupportedVersion = apperror.New(
		apperror.CodeInvalidFormat,
		"Unsupported export version",
		http.StatusBadRequest,
	)
	ErrImportPartial = apperror.New(
		apperror.CodeImportPartial,
		"Import stopped before all records were written",
		http.StatusServiceUnavailable,
	)
)
