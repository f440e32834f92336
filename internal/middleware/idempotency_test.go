package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-payslip/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const idempTTL = time.Hour

type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

func idempotentRouter(t *testing.T, calls *int) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	r := gin.New()
	r.POST("/payslips", func(c *gin.Context) {
		c.Set("user_id_validated", "u-1")
		c.Next()
	}, middleware.Idempotency(rdb, idempTTL), func(c *gin.Context) {
		*calls++
		c.Data(http.StatusCreated, "application/json", []byte(`{"id":"p-1"}`))
	})
	return r, mock
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/payslips", nil)
	if key != "" {
		req.Header.Set(middleware.IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	cacheKey := middleware.IdempotencyCacheKey("/payslips", "u-1", "k-1")
	lockKey := cacheKey + ":lock"
	payload, err := json.Marshal(storedResponse{
		Status:      http.StatusCreated,
		ContentType: "application/json",
		Body:        []byte(`{"id":"p-1"}`),
	})
	require.NoError(t, err)

	t.Run("First Request Stores Response", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, payload, idempTTL).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := postWithKey(r, "k-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Repeat Request Is Replayed", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)
		mock.ExpectGet(cacheKey).SetVal(string(payload))

		w := postWithKey(r, "k-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":"p-1"}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get(middleware.IdempotencyReplayed))
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Concurrent Request Conflicts", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := postWithKey(r, "k-1")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("No Key Bypasses Redis", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)

		w := postWithKey(r, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis Down Falls Through", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)
		mock.ExpectGet(cacheKey).SetErr(assert.AnError)

		w := postWithKey(r, "k-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
	})
}
