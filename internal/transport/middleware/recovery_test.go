package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iciso/iciso-z6/pkg/ctxutil"
)

func TestRecovery_PassesThrough(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	wrapped := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/applications", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, buf.String())
}

func TestRecovery_PanicBecomes500AndIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))

	wrapped := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("catalog index out of range")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/organizations", nil)
	req = req.WithContext(ctxutil.WithRequestID(req.Context(), "req-42"))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", strings.TrimSpace(rec.Body.String()))

	out := buf.String()
	assert.Contains(t, out, "panic recovered")
	assert.Contains(t, out, "catalog index out of range")
	assert.Contains(t, out, "request_id=req-42")
	assert.Contains(t, out, "path=/api/organizations")
	assert.Contains(t, out, "stack=")
}

func TestRecovery_AbortHandlerIsRepanicked(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	wrapped := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	rec := httptest.NewRecorder()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/applications/export", nil))
	}()

	require.NotNil(t, recovered, "abort must propagate to net/http")
	assert.Equal(t, http.ErrAbortHandler, recovered)
	assert.Empty(t, buf.String())
	assert.Empty(t, rec.Body.String())
}
