package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natid/pkg/platform/middleware/requestid"
)

type panicking struct{}

func (panicking) Register(r chi.Router) {
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "natid_test_total", Help: "test"}))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(logger, reg, panicking{})
}

func TestRouter(t *testing.T) {
	router := newRouter(t)

	t.Run("healthz", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(requestid.Header))
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "natid_test_total")
		assert.Contains(t, rec.Body.String(), `natid_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"not_found"}`, rec.Body.String())
	})

	t.Run("panics are recovered", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
