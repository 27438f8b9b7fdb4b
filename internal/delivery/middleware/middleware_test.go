package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curator/config"
	deliverycontext "curator/internal/delivery/context"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	var buf bytes.Buffer
	mw := NewRequestIDMiddleware(newTestLogger(&buf))

	var seenCtxID string
	e.GET("/ping", func(c echo.Context) error {
		seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

		return c.NoContent(http.StatusNoContent)
	}, mw.Process)

	t.Run("propagates incoming header", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "abc-123", seenCtxID)
		assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
		assert.Contains(t, buf.String(), `"route":"/ping"`)
	})

	t.Run("replaces unusable header values", func(t *testing.T) {
		for _, bad := range []string{"has space", "line\nbreak", strings.Repeat("a", 65)} {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, bad)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEqual(t, bad, got)
			assert.Len(t, got, 36, "a fresh uuid is issued")
			assert.Equal(t, got, seenCtxID)
		}
	})

	t.Run("generates when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), seenCtxID)
	})
}

func TestLoggerMiddleware(t *testing.T) {
	cfg := &config.Config{}
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(newTestLogger(&buf), cfg, "/health")

	e := echo.New()
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusInternalServerError) }, mw.Handle)
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw.Handle)
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway) }, mw.Handle)

	for _, path := range []string{"/health", "/ok"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	assert.Empty(t, buf.String(), "successful requests are quiet outside debug and skipped paths never log")

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, float64(http.StatusBadGateway), entry["status"])
	assert.Equal(t, "/boom", entry["route"])
}
