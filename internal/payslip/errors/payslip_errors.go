package paysliperrors

import (
	"go-payslip/internal/shared/apperror"
	"net/http"
)

var (
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found",
		http.StatusNotFound,
	)
	ErrIDConflict = apperror.New(
		apperror.CodeConflict,
		"Payslip id is already used by another owner",
		http.StatusConflict,
	)
	ErrInvalidIssuePeriod = apperror.New(
		apperror.CodeValidationFailed,
		"Issue month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidWorkPeriod = apperror.New(
		apperror.CodeValidationFailed,
		"Work period is not a valid date",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeValidationFailed,
		"Amounts and hours must not be negative",
		http.StatusBadRequest,
	)
	ErrAmountTooLarge = apperror.New(
		apperror.CodeValidationFailed,
		"Amounts must not exceed 1,000,000,000,000,000 yen",
		http.StatusBadRequest,
	)
	ErrInvalidCount = apperror.New(
		apperror.CodeValidationFailed,
		"Count must be between 0 and 120",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeValidationFailed,
		"Period month must be between 1 and 12",
		http.StatusBadRequest,
	)
)
