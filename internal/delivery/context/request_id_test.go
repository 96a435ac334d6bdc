package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID_ReturnsStoredID(t *testing.T) {
	c := newEchoContext()
	SetRequestID(c, "req-789")

	assert.Equal(t, "req-789", GetRequestID(c))
}

func TestGetRequestID_GeneratesWhenMissing(t *testing.T) {
	c := newEchoContext()

	id := GetRequestID(c)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-789"))

	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}
