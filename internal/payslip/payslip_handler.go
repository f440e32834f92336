package payslip

import (
	"net/http"
	"strconv"
	"time"

	paysliperrors "go-payslip/internal/payslip/errors"
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
	l := zap.L().Named("payslip.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.handler")
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
	h.logger.Warn("payslip request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Debug("payslip request binding failed", zap.Error(err))
	h.writeServiceError(c, apperror.MapValidationError(err))
}

func (h *Handler) GetAll(c *gin.Context) {
	payslips, err := h.service.GetAll(c.Request.Context(), ownerID(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToRecords(payslips), response.NewListMeta(len(payslips)))
}

func (h *Handler) GetByID(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToRecord(p), nil)
}

func (h *Handler) GetLatest(c *gin.Context) {
	p, err := h.service.GetLatest(c.Request.Context(), ownerID(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToRecord(p), nil)
}

func (h *Handler) GetByPeriod(c *gin.Context) {
	var query PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.writeBindError(c, err)
		return
	}
	if query.Count == 0 {
		query.Count = DefaultWindow
	}

	start := period.New(query.StartYear, query.StartMonth)
	payslips, err := h.service.GetByPeriod(c.Request.Context(), ownerID(c), start, query.Count)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToRecords(payslips), response.NewListMeta(len(payslips)))
}

// GetByPeriodEndingAt serves the trailing six-month window ending at :year/:month.
func (h *Handler) GetByPeriodEndingAt(c *gin.Context) {
	year, yearErr := strconv.Atoi(c.Param("year"))
	month, monthErr := strconv.Atoi(c.Param("month"))
	if yearErr != nil || monthErr != nil {
		h.writeServiceError(c, paysliperrors.ErrInvalidPeriod)
		return
	}

	end := period.New(year, month)
	if !end.Valid() {
		h.writeServiceError(c, paysliperrors.ErrInvalidPeriod)
		return
	}

	payslips, err := h.service.GetByPeriodEndingAt(c.Request.Context(), ownerID(c), end, DefaultWindow)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToRecords(payslips), response.NewListMeta(len(payslips)))
}

func (h *Handler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	items := req.LineItems()
	if err := ValidateLineItems(items); err != nil {
		h.writeServiceError(c, err)
		return
	}

	totals := CalculateTotals(items)
	response.Success(c, http.StatusOK, TotalsResponse{
		TotalEarnings:   totals.TotalEarnings,
		TotalDeductions: totals.TotalDeductions,
		NetPay:          totals.NetPay,
	}, nil)
}

func (h *Handler) NewDraft(c *gin.Context) {
	response.Success(c, http.StatusOK, ToRecord(h.service.NewDraft(c.Request.Context())), nil)
}

func (h *Handler) CopyForward(c *gin.Context) {
	draft, err := h.service.CopyFromPrevious(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToRecord(draft), nil)
}

// Create saves a new payslip, or updates the one named by an id in the body.
func (h *Handler) Create(c *gin.Context) {
	var req PayslipRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	h.save(c, req, status)
}

func (h *Handler) Update(c *gin.Context) {
	var req PayslipRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	req.ID = c.Param("id")
	h.save(c, req, http.StatusOK)
}

func (h *Handler) save(c *gin.Context, req PayslipRecord, status int) {
	h.logger.Debug("http save payslip",
		zap.String("owner_id", ownerID(c)),
		zap.String("payslip_id", req.ID),
	)
	draft := req.ToEntity()
	draft.CreatedAt = time.Time{}
	draft.UpdatedAt = time.Time{}

	saved, err := h.service.Save(c.Request.Context(), ownerID(c), draft)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, status, ToRecord(saved), nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), ownerID(c), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
