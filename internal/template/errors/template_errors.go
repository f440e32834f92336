package templateerrors

import (
	"go-payslip/internal/shared/apperror"
	"net/http"
)

var (
	ErrTemplateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Template not found",
		http.StatusNotFound,
	)
	ErrNameRequired = apperror.New(
		apperror.CodeValidationFailed,
		"Template name is required",
		http.StatusBadRequest,
	)
	ErrNoIncludedFields = apperror.New(
		apperror.CodeValidationFailed,
		"Select at least one field to include",
		http.StatusBadRequest,
	)
	ErrUnknownField = apperror.New(
		apperror.CodeValidationFailed,
		"Unknown template field",
		http.StatusBadRequest,
	)
	ErrNegativeDefault = apperror.New(
		apperror.CodeValidationFailed,
		"Default values must not be negative",
		http.StatusBadRequest,
	)
	ErrDefaultTooLarge = apperror.New(
		apperror.CodeValidationFailed,
		"Default values must not exceed 1,000,000,000,000,000 yen",
		http.StatusBadRequest,
	)
	ErrIDConflict = apperror.New(
		apperror.CodeConflict,
		"Template id is already used by another owner",
		http.StatusConflict,
	)
)
