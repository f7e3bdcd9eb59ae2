package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/afcon-dashboard/internal/config"
	"github.com/riskibarqy/afcon-dashboard/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:               config.EnvDev,
		ServiceName:          "afcon-dashboard",
		HTTPAddr:             ":0",
		ReadTimeout:          5 * time.Second,
		WriteTimeout:         5 * time.Second,
		CORSAllowedOrigins:   []string{"*"},
		DatasetStore:         config.StoreMemory,
		GeneratorSeedVersion: 1,
		SquadWarmupWorkers:   4,
		DashboardPageSize:    20,
		DashboardTheme:       config.ThemeDark,
	}
}

func TestNew_ServesDashboardFromMemoryStore(t *testing.T) {
	a, err := New(testConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	snapshot, err := a.Preload(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot.Teams, 24)
	require.Len(t, snapshot.Matches, 45)
	require.Len(t, snapshot.TeamStats, 24)

	for _, path := range []string{"/healthz", "/", "/v1/standings/A"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		a.Server.Handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d body=%s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestNew_RejectsUnknownTheme(t *testing.T) {
	cfg := testConfig()
	cfg.DashboardTheme = "neon"

	_, err := New(cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNew_RequiresAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""

	_, err := New(cfg, nil)
	require.Error(t, err)
}

func TestNewServices_FileStorePersistsDatasets(t *testing.T) {
	cfg := testConfig()
	cfg.DatasetStore = config.StoreFile
	cfg.DatasetCacheDir = t.TempDir()

	services, err := NewServices(cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = services.Close() })

	_, err = services.Preload(context.Background())
	require.NoError(t, err)

	items, err := services.Tournament.Datasets(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, items)
}
