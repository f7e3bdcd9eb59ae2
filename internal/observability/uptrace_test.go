package observability

import (
	"context"
	"io"
	"testing"

	"github.com/riskibarqy/afcon-dashboard/internal/config"
	"github.com/riskibarqy/afcon-dashboard/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "afcon-dashboard",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EmptyDSNIsNoop(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: true,
		UptraceDSN:     "  ",
		ServiceName:    "afcon-dashboard",
	}

	shutdown, err := InitUptrace(cfg, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected no pprof server when disabled")
	}
	if err := StopPprofServer(srv, nil, 0); err != nil {
		t.Fatalf("stop nil pprof server: %v", err)
	}
}

func TestInitUptrace_DisabledRemovesLogMirror(t *testing.T) {
	calls := 0
	logging.SetMirror(func(context.Context, logging.Level, string, ...any) { calls++ })
	t.Cleanup(func() { logging.SetMirror(nil) })

	logger := logging.NewJSONTo(io.Discard, logging.LevelInfo)
	logger.Info("before init")
	if calls != 1 {
		t.Fatalf("expected installed mirror to receive a line, got %d", calls)
	}

	if _, err := InitUptrace(config.Config{UptraceEnabled: false, UptraceLogsEnabled: true}, logging.NewNop()); err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	logger.Info("after init")
	if calls != 1 {
		t.Fatalf("expected mirror to be removed when uptrace is disabled, got %d calls", calls)
	}
}
