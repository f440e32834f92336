package report

import (
	"fmt"
	"net/http"

	"go-payslip/internal/period"
	"go-payslip/internal/shared/apperror"
	"go-payslip/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func ownerID(c *gin.Context) string {
	id := c.GetString("user_id_validated")
	if id == "" {
		id = c.GetString("user_id")
	}
	return id
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// PayslipPDF streams one payslip rendered in its selected format.
func (h *Handler) PayslipPDF(c *gin.Context) {
	doc, p, err := h.service.RenderPayslip(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("payslip-%s.pdf", period.New(p.IssueYear, p.IssueMonth))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func (h *Handler) RequestSemiAnnual(c *gin.Context) {
	var req SemiAnnualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	rep, err := h.service.RequestSemiAnnual(c.Request.Context(), ownerID(c), period.New(req.StartYear, req.StartMonth))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, ToResponse(rep), nil)
}

// DownloadSemiAnnual serves the generated file once the report is ready.
func (h *Handler) DownloadSemiAnnual(c *gin.Context) {
	rep, err := h.service.GetSemiAnnual(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("payslips-%s-%s.pdf", rep.Start(), rep.Start().AddMonths(rep.Count-1))
	c.FileAttachment(rep.FilePath, filename)
}
