package backup_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-payslip/internal/backup"
	backuperrors "go-payslip/internal/backup/errors"
	"go-payslip/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeBackupService struct {
	exportFn   func(ctx context.Context, ownerID string) (backup.Payload, error)
	importFn   func(ctx context.Context, ownerID string, payload backup.ImportPayload) (backup.ImportResult, error)
	clearAllFn func(ctx context.Context, ownerID string) error
}

func (f *fakeBackupService) Export(ctx context.Context, ownerID string) (backup.Payload, error) {
	return f.exportFn(ctx, ownerID)
}

func (f *fakeBackupService) Import(ctx context.Context, ownerID string, payload backup.ImportPayload) (backup.ImportResult, error) {
	return f.importFn(ctx, ownerID, payload)
}

func (f *fakeBackupService) ClearAll(ctx context.Context, ownerID string) error {
	return f.clearAllFn(ctx, ownerID)
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if body != "" {
		c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
	} else {
		c.Request = httptest.NewRequest(method, target, nil)
	}
	c.Set("user_id", ownerID)
	return c, w
}

func TestBackupHandler_Export(t *testing.T) {
	svc := &fakeBackupService{
		exportFn: func(ctx context.Context, oid string) (backup.Payload, error) {
			return backup.Payload{
				Version:    backup.FormatVersion,
				ExportedAt: time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
				Payslips:   nil,
				Templates:  nil,
			}, nil
		},
	}

	h := backup.NewHandler(svc)
	c, w := newTestContext(http.MethodGet, "/data/export", "")

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "payslip-backup-2025-03-01.json")

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["version"])
	assert.Equal(t, "2025-03-01T12:00:00Z", body["exportedAt"])
	assert.Contains(t, body, "payslips")
	assert.Contains(t, body, "templates")
}

func TestBackupHandler_Import(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeBackupService{
			importFn: func(ctx context.Context, oid string, payload backup.ImportPayload) (backup.ImportResult, error) {
				assert.NotNil(t, payload.Payslips)
				assert.NotNil(t, payload.Templates)
				return backup.ImportResult{PayslipsCount: len(*payload.Payslips)}, nil
			},
		}

		h := backup.NewHandler(svc)
		c, w := newTestContext(http.MethodPost, "/data/import", `{"version":1,"payslips":[{"issueYear":2025,"issueMonth":1}],"templates":[]}`)

		h.Import(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		var result backup.ImportResult
		assert.NoError(t, json.Unmarshal(env.Data, &result))
		assert.Equal(t, 1, result.PayslipsCount)
	})

	t.Run("malformed body", func(t *testing.T) {
		h := backup.NewHandler(&fakeBackupService{})
		c, w := newTestContext(http.MethodPost, "/data/import", `not json`)

		h.Import(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_FORMAT", env.Error.Code)
	})

	t.Run("partial import reports counts", func(t *testing.T) {
		svc := &fakeBackupService{
			importFn: func(ctx context.Context, oid string, payload backup.ImportPayload) (backup.ImportResult, error) {
				return backup.ImportResult{PayslipsCount: 4}, apperror.WithCause(backuperrors.ErrImportPartial, errors.New("connection lost"))
			},
		}

		h := backup.NewHandler(svc)
		c, w := newTestContext(http.MethodPost, "/data/import", `{"payslips":[],"templates":[]}`)

		h.Import(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "IMPORT_PARTIAL", env.Error.Code)

		var details backup.PartialImportDetails
		assert.NoError(t, json.Unmarshal(env.Error.Details, &details))
		assert.Equal(t, 4, details.PayslipsCount)
		assert.Equal(t, "connection lost", details.Cause)
	})

	t.Run("partial import keeps the conflict status", func(t *testing.T) {
		conflict := apperror.New(apperror.CodeConflict, "Payslip id belongs to another user", http.StatusConflict)
		partial := apperror.WithCause(backuperrors.ErrImportPartial, conflict)
		partial.HTTPStatus = http.StatusConflict
		svc := &fakeBackupService{
			importFn: func(ctx context.Context, oid string, payload backup.ImportPayload) (backup.ImportResult, error) {
				return backup.ImportResult{PayslipsCount: 1}, partial
			},
		}

		h := backup.NewHandler(svc)
		c, w := newTestContext(http.MethodPost, "/data/import", `{"payslips":[],"templates":[]}`)

		h.Import(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "IMPORT_PARTIAL", env.Error.Code)

		var details backup.PartialImportDetails
		assert.NoError(t, json.Unmarshal(env.Error.Details, &details))
		assert.Equal(t, 1, details.PayslipsCount)
	})
}

func TestBackupHandler_ClearAll(t *testing.T) {
	called := false
	svc := &fakeBackupService{
		clearAllFn: func(ctx context.Context, oid string) error {
			called = true
			assert.Equal(t, ownerID, oid)
			return nil
		},
	}

	h := backup.NewHandler(svc)
	c, w := newTestContext(http.MethodDelete, "/data", "")

	h.ClearAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}
