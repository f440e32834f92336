package editor

import (
	"net/http"
	"time"

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
	l := zap.L().Named("editor.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("editor.handler")
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
	h.logger.Warn("editor request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("session_id", c.Param("id")),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Open(c *gin.Context) {
	session, err := h.service.Open(c.Request.Context(), ownerID(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, session, nil)
}

func (h *Handler) Get(c *gin.Context) {
	session, err := h.service.Get(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, session, nil)
}

func (h *Handler) StartNew(c *gin.Context) {
	session, err := h.service.StartNew(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, session, nil)
}

func (h *Handler) StartFromTemplate(c *gin.Context) {
	session, err := h.service.StartFromTemplate(c.Request.Context(), ownerID(c), c.Param("id"), c.Param("templateId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, session, nil)
}

// StartCopyForward accepts an optional sourceId body. Without one the latest
// payslip is copied.
func (h *Handler) StartCopyForward(c *gin.Context) {
	var req CopyForwardRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
	}

	session, err := h.service.StartCopyForward(c.Request.Context(), ownerID(c), c.Param("id"), req.SourceID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, session, nil)
}

func (h *Handler) Edit(c *gin.Context) {
	session, err := h.service.Edit(c.Request.Context(), ownerID(c), c.Param("id"), c.Param("payslipId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, session, nil)
}

func (h *Handler) UpdateDraft(c *gin.Context) {
	var req payslip.PayslipRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	draft := req.ToEntity()
	draft.CreatedAt = time.Time{}
	draft.UpdatedAt = time.Time{}

	session, err := h.service.UpdateDraft(c.Request.Context(), ownerID(c), c.Param("id"), draft)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, session, nil)
}

func (h *Handler) Save(c *gin.Context) {
	session, saved, err := h.service.Save(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.logger.Info("editor draft saved",
		zap.String("session_id", session.ID),
		zap.String("payslip_id", saved.ID),
	)
	response.Success(c, http.StatusOK, SaveResponse{
		Session: session,
		Payslip: payslip.ToRecord(saved),
	}, nil)
}

func (h *Handler) SwitchView(c *gin.Context) {
	var req SwitchViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	session, err := h.service.SwitchView(c.Request.Context(), ownerID(c), c.Param("id"), req.View)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, session, nil)
}

func (h *Handler) Close(c *gin.Context) {
	if err := h.service.Close(c.Request.Context(), ownerID(c), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
