package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := slog.New(slog.NewJSONHandler(io.Discard, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))

	var nilLogger *slog.Logger
	assert.Same(t, fallback, GetLoggerOrDefault(WithLogger(context.Background(), nilLogger), fallback))
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)
	assert.NotEqual(t, generated, GetRequestID(c))

	SetRequestID(c, "req-2")
	assert.Equal(t, "req-2", GetRequestID(c))
}
