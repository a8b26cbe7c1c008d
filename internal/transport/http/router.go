package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"natid/internal/platform/metrics"
	"natid/pkg/platform/httputil"
	"natid/pkg/platform/middleware/metadata"
	"natid/pkg/platform/middleware/requestid"
)

// Registrar mounts a module's endpoints.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires the shared middleware chain, health and metrics endpoints,
// then lets each module register its own routes. Transport metrics are
// registered on reg and /metrics serves it; a nil reg falls back to the
// default Prometheus registry.
func NewRouter(logger *slog.Logger, reg *prometheus.Registry, modules ...Registrar) http.Handler {
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if reg != nil {
		registerer, gatherer = reg, reg
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(metrics.New(registerer).Middleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	for _, m := range modules {
		m.Register(r)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		logger.DebugContext(req.Context(), "route not found", "path", req.URL.Path)
		httputil.WriteJSON(w, http.StatusNotFound, httputil.ErrorResponse{Error: "not_found"})
	})
	return r
}
