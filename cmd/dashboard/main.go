package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/afcon-dashboard/internal/app"
	"github.com/riskibarqy/afcon-dashboard/internal/config"
	"github.com/riskibarqy/afcon-dashboard/internal/observability"
	"github.com/riskibarqy/afcon-dashboard/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

func run() (code int) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		return 1
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	var cleanup teardown
	defer func() {
		if !cleanup.run(logger, shutdownTimeout) && code == 0 {
			code = 1
		}
	}()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	cleanup.add("shutdown uptrace", shutdownTracing)

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		return 1
	}
	cleanup.add("stop pyroscope", func(context.Context) error { return stopProfiler() })

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof", "error", err)
		return 1
	}
	cleanup.add("stop pprof", func(context.Context) error {
		return observability.StopPprofServer(pprofSrv, logger, shutdownTimeout)
	})

	dashboard, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return 1
	}
	cleanup.add("close app", func(context.Context) error { return dashboard.Close() })

	// Datasets must resolve before the listener opens.
	if _, err := dashboard.Preload(context.Background()); err != nil {
		logger.Error("preload datasets", "error", err)
		return 1
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "store", cfg.DatasetStore, "theme", cfg.DashboardTheme)
		if err := dashboard.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	cleanup.add("graceful shutdown", dashboard.Server.Shutdown)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		logger.Info("http server stopping")
	case err, ok := <-serveErr:
		if ok {
			logger.Error("http server failed", "error", err)
			return 1
		}
	}
	return 0
}

type teardownStep struct {
	name string
	fn   func(context.Context) error
}

// teardown runs registered steps in reverse order of registration.
type teardown struct {
	steps []teardownStep
}

func (t *teardown) add(name string, fn func(context.Context) error) {
	t.steps = append(t.steps, teardownStep{name: name, fn: fn})
}

// run reports whether every step succeeded. All steps run regardless of earlier failures and
// share one timeout.
func (t *teardown) run(logger *logging.Logger, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ok := true
	for i := len(t.steps) - 1; i >= 0; i-- {
		step := t.steps[i]
		if err := step.fn(ctx); err != nil {
			logger.Error(step.name+" failed", "error", err)
			ok = false
		}
	}
	t.steps = nil
	return ok
}
