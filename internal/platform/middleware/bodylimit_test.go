package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBodyLimit_RejectsDeclaredOversize(t *testing.T) {
	handlerRan := false
	handler := BodyLimit(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/profile", strings.NewReader(strings.Repeat("x", 64)))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.False(t, handlerRan, "handler must not run for oversized bodies")
}

func TestBodyLimit_CapsReadsForUndeclaredLength(t *testing.T) {
	var readErr error
	handler := BodyLimit(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/profile", strings.NewReader(strings.Repeat("x", 64)))
	req.ContentLength = -1 // chunked
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var tooLarge *http.MaxBytesError
	assert.ErrorAs(t, readErr, &tooLarge)
}

func TestBodyLimit_PassesSmallBodies(t *testing.T) {
	var body []byte
	handler := BodyLimit(1024)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/profile", strings.NewReader(`{"name":"ok"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, `{"name":"ok"}`, string(body))
}
