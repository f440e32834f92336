package template

import (
	"net/http"

	"go-payslip/internal/payslip"
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
	l := zap.L().Named("template.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("template.handler")
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
	h.logger.Warn("template request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	templates, err := h.service.GetAll(c.Request.Context(), ownerID(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToRecords(templates), response.NewListMeta(len(templates)))
}

func (h *Handler) GetByID(c *gin.Context) {
	t, err := h.service.GetByID(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToRecord(t), nil)
}

// GetFields lists the presettable fields with their labels and form ids.
func (h *Handler) GetFields(c *gin.Context) {
	response.Success(c, http.StatusOK, Fields, response.NewListMeta(len(Fields)))
}

func (h *Handler) Apply(c *gin.Context) {
	draft, err := h.service.Apply(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, payslip.ToRecord(draft), nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req TemplateRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	h.save(c, req, status)
}

func (h *Handler) Update(c *gin.Context) {
	var req TemplateRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	req.ID = c.Param("id")
	h.save(c, req, http.StatusOK)
}

func (h *Handler) save(c *gin.Context, req TemplateRecord, status int) {
	h.logger.Debug("http save template",
		zap.String("owner_id", ownerID(c)),
		zap.String("template_id", req.ID),
	)
	req.CreatedAt = nil
	req.UpdatedAt = nil

	saved, err := h.service.Save(c.Request.Context(), ownerID(c), req.ToEntity())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, status, ToRecord(saved), nil)
}

// FromPayslip turns a payslip draft into unsaved template values for the editor.
func (h *Handler) FromPayslip(c *gin.Context) {
	var req payslip.PayslipRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	response.Success(c, http.StatusOK, ToRecord(FromPayslip(req.ToEntity())), nil)
}

func (h *Handler) Duplicate(c *gin.Context) {
	copied, err := h.service.Duplicate(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ToRecord(copied), nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), ownerID(c), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
