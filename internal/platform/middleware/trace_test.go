package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profiled/pkg/requestcontext"
)

func traceFromRequest(t *testing.T, req *http.Request) string {
	t.Helper()
	var got string
	handler := Trace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = requestcontext.TraceID(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestTrace_UsesHeaderSegment(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(TraceHeader, "abc123/456;o=1")

	assert.Equal(t, "abc123", traceFromRequest(t, req))
}

func TestTrace_HeaderWithoutSlash(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(TraceHeader, "abc123")

	assert.Equal(t, "abc123", traceFromRequest(t, req))
}

func TestTrace_GeneratesWhenAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	got := traceFromRequest(t, req)
	require.NotEmpty(t, got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err, "generated trace id should be a UUID")
}

func TestTrace_DistinctPerRequest(t *testing.T) {
	first := traceFromRequest(t, httptest.NewRequest(http.MethodGet, "/", nil))
	second := traceFromRequest(t, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEqual(t, first, second)
}
