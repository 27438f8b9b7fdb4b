package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.Default().With(slog.String("request_id", "r"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestAccountID(t *testing.T) {
	c := newEchoContext()
	_, ok := GetAccountID(c)
	assert.False(t, ok)

	id := uuid.New()
	SetAccountID(c, id)
	got, ok := GetAccountID(c)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	got, ok = GetAccountIDFromContext(WithAccountID(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = GetAccountIDFromContext(WithAccountID(context.Background(), uuid.Nil))
	assert.False(t, ok)
}
