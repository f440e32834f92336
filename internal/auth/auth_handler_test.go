package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-payslip/internal/auth"
	autherrors "go-payslip/internal/auth/errors"
	authMock "go-payslip/internal/auth/mock"
)

var testCookies = auth.CookieConfig{AccessTTL: 15 * time.Minute, RefreshTTL: time.Hour}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, testCookies)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	reqBody := auth.LoginRequest{Email: "test@example.com", Password: "password123"}
	body, _ := json.Marshal(reqBody)
	issued := auth.Tokens{AccessToken: "access-token", RefreshToken: "refresh-token"}
	user := auth.AuthResponse{ID: "user-1", Email: "test@example.com", Name: "Test"}

	t.Run("Web Client Gets Cookies", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(issued, user, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "WEB")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		access := cookieNamed(w, auth.AccessCookie)
		if assert.NotNil(t, access) {
			assert.Equal(t, "access-token", access.Value)
			assert.True(t, access.HttpOnly)
			assert.Equal(t, 900, access.MaxAge)
		}
		assert.NotNil(t, cookieNamed(w, auth.RefreshCookie))
	})

	t.Run("API Client Gets Body Only", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(issued, user, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
		assert.Contains(t, w.Body.String(), `"access_token":"access-token"`)
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(auth.Tokens{}, auth.AuthResponse{}, autherrors.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Validation Error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"bad"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, testCookies)
	router := setupAuthRouter()
	router.POST("/register", handler.Register)

	reqBody := auth.RegisterRequest{Email: "new@example.com", Name: "New", Password: "password123"}
	body, _ := json.Marshal(reqBody)

	t.Run("Created", func(t *testing.T) {
		mockService.EXPECT().
			Register(gomock.Any(), reqBody).
			Return(auth.AuthResponse{ID: "u-1", Email: reqBody.Email, Name: reqBody.Name}, nil)

		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockService.EXPECT().
			Register(gomock.Any(), reqBody).
			Return(auth.AuthResponse{}, autherrors.ErrEmailAlreadyRegistered)

		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, testCookies)
	router := setupAuthRouter()
	router.POST("/refresh", handler.RefreshToken)

	t.Run("Web Client Uses Cookie", func(t *testing.T) {
		mockService.EXPECT().
			RefreshToken(gomock.Any(), "cookie-refresh").
			Return(auth.Tokens{AccessToken: "a2", RefreshToken: "r2"}, auth.AuthResponse{ID: "u-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		req.Header.Set("X-Client-Type", "web")
		req.AddCookie(&http.Cookie{Name: auth.RefreshCookie, Value: "cookie-refresh"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "r2", cookieNamed(w, auth.RefreshCookie).Value)
	})

	t.Run("Web Client Missing Cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		req.Header.Set("X-Client-Type", "WEB")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("API Client Uses Body", func(t *testing.T) {
		mockService.EXPECT().
			RefreshToken(gomock.Any(), "body-refresh").
			Return(auth.Tokens{AccessToken: "a2", RefreshToken: "r2"}, auth.AuthResponse{ID: "u-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/refresh", bytes.NewBufferString(`{"refresh_token":"body-refresh"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_MeAndLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, testCookies)
	router := setupAuthRouter()
	router.GET("/me", func(c *gin.Context) {
		c.Set("user_id", "u-1")
		c.Next()
	}, handler.Me)
	router.POST("/logout", handler.Logout)

	mockService.EXPECT().GetMe(gomock.Any(), "u-1").Return(auth.AuthResponse{ID: "u-1"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -1, cookieNamed(w, auth.AccessCookie).MaxAge)
}
