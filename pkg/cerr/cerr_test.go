package cerr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firedeskhq/firedesk/pkg/storage"
)

func TestCodeHTTPCode(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{OK, http.StatusOK},
		{Canceled, 499},
		{InvalidArgument, http.StatusBadRequest},
		{NotFound, http.StatusNotFound},
		{AlreadyExists, http.StatusConflict},
		{FailedPrecondition, http.StatusPreconditionFailed},
		{Internal, http.StatusInternalServerError},
		{Unauthenticated, http.StatusUnauthorized},
		{Code(999), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.HTTPCode(), "code %s", tt.code)
	}
}

func TestErrorMessage(t *testing.T) {
	err := NewError(NotFound, "task not found", errors.New("missing.yaml"))
	assert.Equal(t, "[not_found] task not found: missing.yaml", err.Error())

	bare := NewError(InvalidArgument, "bad request", nil)
	assert.Equal(t, "[invalid_argument] bad request", bare.Error())
}

func TestIsCode(t *testing.T) {
	err := NewError(NotFound, "task not found", nil)
	assert.True(t, IsCode(err, NotFound))
	assert.False(t, IsCode(err, Internal))

	wrapped := fmt.Errorf("loading: %w", err)
	assert.True(t, IsCode(wrapped, NotFound))

	assert.False(t, IsCode(errors.New("plain"), NotFound))
	assert.False(t, IsCode(nil, NotFound))
}

func TestStackCapturedForErrorLevel(t *testing.T) {
	assert.NotEmpty(t, NewError(Internal, "server error", nil).Stack)
	assert.Empty(t, NewError(NotFound, "not found", nil).Stack)
}

func TestWrapStorageReadError(t *testing.T) {
	err := WrapStorageReadError("task", fmt.Errorf("t1.yaml: %w", storage.ErrNotFound))
	assert.True(t, IsCode(err, NotFound))

	err = WrapStorageReadError("task", errors.New("disk failure"))
	assert.True(t, IsCode(err, Internal))
}

func TestWrapStorageDeleteError(t *testing.T) {
	err := WrapStorageDeleteError("project", storage.ErrNotFound)
	assert.True(t, IsCode(err, NotFound))

	err = WrapStorageDeleteError("project", errors.New("disk failure"))
	assert.True(t, IsCode(err, Internal))
}

func TestJSONResponseMiddlewareSuccess(t *testing.T) {
	handler := NewJSONResponseChiMiddleware()(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		SetJSONResponse(r.Context(), map[string]string{"status": "ok"})
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestJSONResponseMiddlewareError(t *testing.T) {
	handler := NewJSONResponseChiMiddleware()(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		SetNewJSONError(r.Context(), NotFound, "task not found", nil)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body httpError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body.Code)
	assert.Equal(t, "task not found", body.Message)
}

func TestJSONResponseMiddlewarePlainError(t *testing.T) {
	handler := NewJSONResponseChiMiddleware()(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		SetJSONError(r.Context(), errors.New("boom"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body httpError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unknown", body.Code)
}

func TestJSONResponseMiddlewareCanceled(t *testing.T) {
	handler := NewJSONResponseChiMiddleware()(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		SetJSONError(r.Context(), context.Canceled)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, 499, rec.Code)
}

func TestSetJSONResponseWithoutMiddleware(t *testing.T) {
	// Must be a no-op when the middleware is not installed.
	SetJSONResponse(context.Background(), "ignored")
	SetJSONError(context.Background(), errors.New("ignored"))
}
