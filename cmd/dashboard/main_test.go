package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/afcon-dashboard/internal/domain/dataset"
	"github.com/riskibarqy/afcon-dashboard/internal/platform/logging"
)

func TestTeardownRunsEveryStepInReverse(t *testing.T) {
	t.Parallel()

	var order []string
	var cleanup teardown
	for _, name := range []string{"tracing", "profiler", "app"} {
		cleanup.add(name, func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				t.Fatalf("expected step %s to get a deadline", name)
			}
			order = append(order, name)
			if name == "profiler" {
				return errors.New("flush failed")
			}
			return nil
		})
	}

	if cleanup.run(logging.NewNop(), time.Second) {
		t.Fatalf("expected a failed step to be reported")
	}
	want := []string{"app", "profiler", "tracing"}
	if len(order) != len(want) {
		t.Fatalf("unexpected steps run: %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("unexpected order: got=%v want=%v", order, want)
		}
	}

	if !cleanup.run(logging.NewNop(), time.Second) {
		t.Fatalf("expected a drained teardown to succeed")
	}
}

func TestRunStopsObservabilityWhenPreloadFails(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, fmt.Sprintf("%s.v%d.json", dataset.NameTeams, dataset.SchemaVersion))
	if err := os.WriteFile(corrupt, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt snapshot: %v", err)
	}

	t.Setenv("APP_ENV", "dev")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DATASET_STORE", "file")
	t.Setenv("DATASET_CACHE_DIR", dir)
	t.Setenv("PPROF_ENABLED", "false")
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "false")

	if code := run(); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}
