package editorerrors

import (
	"go-payslip/internal/shared/apperror"
	"net/http"
)

var (
	ErrSessionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Editor session not found or expired",
		http.StatusNotFound,
	)
	ErrInvalidView = apperror.New(
		apperror.CodeValidationFailed,
		"Unknown view",
		http.StatusBadRequest,
	)
	ErrNoDraft = apperror.New(
		apperror.CodeValidationFailed,
		"Session has no draft to save",
		http.StatusBadRequest,
	)
)
