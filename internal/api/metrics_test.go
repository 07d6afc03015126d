package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricsMiddlewareKeepsWriterExtensions(t *testing.T) {
	var sawHijacker, sawFlusher bool
	var unwrapped http.ResponseWriter

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHijacker = w.(http.Hijacker)
		_, sawFlusher = w.(http.Flusher)
		if u, ok := w.(interface{ Unwrap() http.ResponseWriter }); ok {
			unwrapped = u.Unwrap()
		}
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.True(t, sawHijacker)
	require.True(t, sawFlusher)
	require.Same(t, http.ResponseWriter(rec), unwrapped)
	require.Equal(t, http.StatusTeapot, rec.Code)
}
