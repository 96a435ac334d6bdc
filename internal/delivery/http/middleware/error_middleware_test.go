package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "canpestre/internal/delivery/context"
	"canpestre/internal/delivery/http/response"
	domainerrors "canpestre/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/mascotas/mascotas_id/9", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestHandleHTTPError_AppErrorCarriesRequestID(t *testing.T) {
	c, rec := newErrorContext(t)
	deliverycontext.SetRequestID(c, "req-123")

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil)))
	m.HandleHTTPError(domainerrors.ErrPetNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, domainerrors.ErrPetNotFound.Message(), resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, domainerrors.ErrPetNotFound.ErrorCode(), resp.Error.Code)
	assert.Equal(t, "req-123", resp.Error.RequestID)
}

func TestHandleHTTPError_UnknownRouteUsesSpanishNotFound(t *testing.T) {
	c, rec := newErrorContext(t)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil)))
	m.HandleHTTPError(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, domainerrors.ErrNotFound.Message(), resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), resp.Error.Code)
	assert.Equal(t, "/mascotas/mascotas_id/9", resp.Error.Details)
}

func TestHandleHTTPError_EchoErrorPassesThrough(t *testing.T) {
	c, rec := newErrorContext(t)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil)))
	m.HandleHTTPError(echo.ErrMethodNotAllowed, c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "HTTP_ERROR", resp.Error.Code)
}

func TestHandleHTTPError_UnhandledErrorUsesRequestScopedLogger(t *testing.T) {
	c, rec := newErrorContext(t)

	var scoped bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&scoped, nil)).
		With(slog.String("request_id", "req-456"))
	ctx := deliverycontext.WithLogger(c.Request().Context(), reqLogger)
	c.SetRequest(c.Request().WithContext(ctx))

	var fallback bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&fallback, nil)))
	m.HandleHTTPError(errors.New("connection reset"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, domainerrors.ErrInternalError.Message(), resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, domainerrors.ErrInternalError.ErrorCode(), resp.Error.Code)

	// The log line went through the request-scoped logger, tagged with the
	// request id, not the middleware's fallback.
	assert.Contains(t, scoped.String(), "Unhandled error")
	assert.Contains(t, scoped.String(), "req-456")
	assert.Empty(t, fallback.String())
}
