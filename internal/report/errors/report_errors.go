package reporterrors

import (
	"go-payslip/internal/shared/apperror"
	"net/http"
)

var (
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Report not found",
		http.StatusNotFound,
	)
	ErrReportPending = apperror.New(
		apperror.CodeNotFound,
		"Report is still being generated",
		http.StatusNotFound,
	)
	ErrReportFailed = apperror.New(
		apperror.CodeInternalError,
		"Report generation failed",
		http.StatusInternalServerError,
	)
	ErrEmptyWindow = apperror.New(
		apperror.CodeNotFound,
		"No payslips in the requested period",
		http.StatusNotFound,
	)
)
