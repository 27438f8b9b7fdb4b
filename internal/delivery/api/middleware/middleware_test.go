package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"curator/config"
	"curator/internal/delivery/api/response"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/service"
	"curator/internal/errors"
	mockservice "curator/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	accountID := uuid.New()

	newEcho := func(tokenSvc service.TokenService) *echo.Echo {
		e := echo.New()
		mw := NewAuthMiddleware(tokenSvc, newDiscardLogger())
		e.GET("/me", func(c echo.Context) error {
			id, ok := GetAccountID(c)
			if !ok {
				return c.NoContent(http.StatusTeapot)
			}

			return c.String(http.StatusOK, id.String())
		}, mw.Authenticate)

		return e
	}

	t.Run("valid token", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{AccountID: accountID, Type: service.TokenTypeAccess}, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good")
		rec := httptest.NewRecorder()
		newEcho(tokenSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, accountID.String(), rec.Body.String())
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "empty token", header: "Bearer "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockservice.NewMockTokenService(t)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			newEcho(tokenSvc).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, domainerrors.ErrUnauthorized.ErrorCode(), decodeError(t, rec).Code)
		})
	}

	t.Run("rejected token", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
		rec := httptest.NewRecorder()
		newEcho(tokenSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 60,
		Burst:             2,
		IdleTTL:           time.Minute,
	}}
	mw := NewRateLimitMiddleware(cfg)
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	mw.now = func() time.Time { return clock }

	e := echo.New()
	e.POST("/submit", func(c echo.Context) error { return c.NoContent(http.StatusCreated) }, mw.Limit)

	submit := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec
	}

	assert.Equal(t, http.StatusCreated, submit("10.0.0.1").Code)
	assert.Equal(t, http.StatusCreated, submit("10.0.0.1").Code)

	rec := submit("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, domainerrors.ErrTooManyRequests.ErrorCode(), decodeError(t, rec).Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusCreated, submit("10.0.0.2").Code, "limits are per client")

	clock = clock.Add(time.Second)
	assert.Equal(t, http.StatusCreated, submit("10.0.0.1").Code, "one token refills per second")

	clock = clock.Add(2 * time.Minute)
	submit("10.0.0.3")
	mw.mu.Lock()
	assert.Len(t, mw.visitors, 1, "idle visitors are forgotten")
	mw.mu.Unlock()
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	mw := NewRateLimitMiddleware(&config.Config{})

	e := echo.New()
	e.POST("/submit", func(c echo.Context) error { return c.NoContent(http.StatusCreated) }, mw.Limit)

	for range 20 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/submit", nil))
		require.Equal(t, http.StatusCreated, rec.Code)
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "validation error keeps details",
			err:         domainerrors.ErrValidationFailed.WithDetails("title is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "title is required",
		},
		{
			name:       "wrapped forbidden",
			err:        errors.Wrap(domainerrors.ErrForbidden, "questionnaire owned by someone else"),
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "server errors hide details",
			err:        domainerrors.ErrImageUploadFailed.WithDetails("bucket unavailable"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "IMAGE_UPLOAD_FAILED",
		},
		{
			name:       "echo http error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	mw := NewErrorMiddleware(newDiscardLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			mw.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Equal(t, tt.wantDetails, info.Details)
		})
	}
}
