package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"natid/internal/nationalid/handler"
	"natid/internal/nationalid/metrics"
	"natid/internal/nationalid/service"
	"natid/internal/platform/config"
	"natid/internal/platform/httpserver"
	"natid/internal/platform/logger"
	httptransport "natid/internal/transport/http"
	"natid/pkg/platform/random"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Identifier rules live in internal/nationalid.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "natid-server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var src random.Source = random.New()
	if cfg.RandomSeed != 0 {
		src = random.NewSeeded(cfg.RandomSeed)
		log.Warn("deterministic generation enabled", "seed", cfg.RandomSeed)
	}

	svc := service.New(
		service.WithRandom(src),
		service.WithLogger(log),
		service.WithMetrics(metrics.New(reg)),
	)
	router := httptransport.NewRouter(log, reg, handler.New(svc, log))
	srv := httpserver.New(cfg, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting natid server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", slog.Any("error", err))
		return err
	}
	return nil
}
