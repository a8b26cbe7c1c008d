package httpserver

import (
	"net/http"
	"time"

	"natid/internal/platform/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
)

// New builds the natid HTTP server from cfg. Read and write deadlines both
// follow cfg.RequestTimeout.
func New(cfg config.Server, handler http.Handler) *http.Server {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: min(readHeaderTimeout, timeout),
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
		IdleTimeout:       idleTimeout,
	}
}
