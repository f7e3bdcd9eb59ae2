package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/afcon-dashboard/internal/domain/dataset"
	"github.com/riskibarqy/afcon-dashboard/internal/platform/resilience"
)

func TestStore_GuardOpensCircuit(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1}, nil)
	ctx := context.Background()
	boom := errors.New("connection refused")

	for i := 0; i < 2; i++ {
		if err := s.guard(ctx, func() error { return boom }); !errors.Is(err, boom) {
			t.Fatalf("expected underlying error, got %v", err)
		}
	}

	called := false
	err := s.guard(ctx, func() error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if called {
		t.Fatalf("expected open circuit to skip the call")
	}
}

func TestStore_GuardTreatsNoRowsAsSuccess(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute, HalfOpenMaxReq: 1}, nil)
	for i := 0; i < 3; i++ {
		if err := s.guard(context.Background(), func() error { return sql.ErrNoRows }); !errors.Is(err, sql.ErrNoRows) {
			t.Fatalf("expected sql.ErrNoRows, got %v", err)
		}
	}
	if s.breaker.State() != resilience.CircuitStateClosed {
		t.Fatalf("expected closed circuit, got %s", s.breaker.State())
	}
}

func TestStore_GuardDisabled(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, resilience.CircuitBreakerConfig{Enabled: false, FailureThreshold: 1}, nil)
	boom := errors.New("boom")
	for i := 0; i < 3; i++ {
		if err := s.guard(context.Background(), func() error { return boom }); !errors.Is(err, boom) {
			t.Fatalf("expected pass-through error, got %v", err)
		}
	}
}

func TestStore_RejectsInvalidKey(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, resilience.CircuitBreakerConfig{}, nil)
	var out []int
	if _, err := s.Load(context.Background(), dataset.Key{Name: "Teams!", SchemaVersion: 1, SeedVersion: 1}, &out); err == nil {
		t.Fatalf("expected invalid key error")
	}
	if err := s.Save(context.Background(), dataset.Key{Name: "teams"}, out, 0); err == nil {
		t.Fatalf("expected invalid version error")
	}
}

func TestUpsertSnapshotQueryOverwritesLiveRow(t *testing.T) {
	t.Parallel()

	query, args, err := upsertSnapshotQuery(snapshotModel{
		Name:          "teams",
		SchemaVersion: 1,
		SeedVersion:   2,
		RowCount:      24,
		Payload:       "[]",
		GeneratedAt:   time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("build upsert: %v", err)
	}
	if len(args) != 6 {
		t.Fatalf("unexpected args: %+v", args)
	}

	for _, want := range []string{
		"ON CONFLICT (name) WHERE deleted_at IS NULL DO UPDATE SET",
		"payload = EXCLUDED.payload",
		"seed_version = EXCLUDED.seed_version",
		"updated_at = NOW()",
	} {
		if !strings.Contains(query, want) {
			t.Fatalf("expected %q in upsert query, got: %s", want, query)
		}
	}
	if strings.Contains(query, "name = EXCLUDED.name") {
		t.Fatalf("conflict key must not be rewritten: %s", query)
	}
}
