package backup

import (
	"errors"
	"fmt"
	"net/http"

	backuperrors "go-payslip/internal/backup/errors"
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
	l := zap.L().Named("backup.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("backup.handler")
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
	h.logger.Warn("backup request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Export writes the raw export file rather than the response envelope so the body
// can be saved and imported as is.
func (h *Handler) Export(c *gin.Context) {
	payload, err := h.service.Export(c.Request.Context(), ownerID(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("payslip-backup-%s.json", payload.ExportedAt.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.JSON(http.StatusOK, payload)
}

func (h *Handler) Import(c *gin.Context) {
	var req ImportPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("import payload rejected", zap.Error(err))
		h.writeServiceError(c, apperror.WithCause(backuperrors.ErrInvalidFormat, err))
		return
	}

	result, err := h.service.Import(c.Request.Context(), ownerID(c), req)
	if err != nil {
		if errors.Is(err, backuperrors.ErrImportPartial) {
			details := PartialImportDetails{ImportResult: result}
			if cause := errors.Unwrap(err); cause != nil {
				details.Cause = cause.Error()
			}
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, details)
			return
		}
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) ClearAll(c *gin.Context) {
	if err := h.service.ClearAll(c.Request.Context(), ownerID(c)); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cleared": true}, nil)
}
