package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/afcon-dashboard/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DATASET_STORE", "")
	t.Setenv("DATASET_CACHE_DIR", "")
	t.Setenv("GENERATOR_SEED_VERSION", "")
	t.Setenv("DASHBOARD_PAGE_SIZE", "")
	t.Setenv("MEMO_CACHE_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: %s", cfg.AppEnv)
	}
	if cfg.DatasetStore != StoreFile || cfg.DatasetCacheDir != "cache" {
		t.Fatalf("unexpected dataset store: %s %s", cfg.DatasetStore, cfg.DatasetCacheDir)
	}
	if cfg.GeneratorSeedVersion != 1 {
		t.Fatalf("unexpected seed version: %d", cfg.GeneratorSeedVersion)
	}
	if cfg.DashboardPageSize != 20 {
		t.Fatalf("unexpected page size: %d", cfg.DashboardPageSize)
	}
	if cfg.MemoCacheTTL != 0 {
		t.Fatalf("expected memo cache without expiry, got %s", cfg.MemoCacheTTL)
	}
	if cfg.DashboardTheme != ThemeDark {
		t.Fatalf("unexpected theme: %s", cfg.DashboardTheme)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_DatasetStoreValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("unknown store", func(t *testing.T) {
		t.Setenv("DATASET_STORE", "redis")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown DATASET_STORE")
		}
	})

	t.Run("postgres requires db url", func(t *testing.T) {
		t.Setenv("DATASET_STORE", "postgres")
		t.Setenv("DB_URL", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when DATASET_STORE=postgres without DB_URL")
		}
	})

	t.Run("postgres with db url", func(t *testing.T) {
		t.Setenv("DATASET_STORE", " Postgres ")
		t.Setenv("DB_URL", "postgres://localhost:5432/afcon?sslmode=disable")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DatasetStore != StorePostgres {
			t.Fatalf("unexpected store: %s", cfg.DatasetStore)
		}
	})
}

func TestLoad_NumericBounds(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cases := map[string]string{
		"GENERATOR_SEED_VERSION":  "0",
		"DASHBOARD_PAGE_SIZE":     "101",
		"SQUAD_WARMUP_WORKERS":    "0",
		"MEMO_CACHE_TTL":          "-1s",
		"DB_CIRCUIT_OPEN_TIMEOUT": "0s",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoad_ParsesOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "PROD")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MEMO_CACHE_TTL", "5m")
	t.Setenv("GENERATOR_SEED_VERSION", "3")
	t.Setenv("DASHBOARD_THEME", "light")
	t.Setenv("DATASET_CACHE_DIR", "/tmp/afcon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvProd || cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected env/level: %s %s", cfg.AppEnv, cfg.LogLevel)
	}
	if cfg.MemoCacheTTL != 5*time.Minute || cfg.GeneratorSeedVersion != 3 {
		t.Fatalf("unexpected cache ttl/seed: %s %d", cfg.MemoCacheTTL, cfg.GeneratorSeedVersion)
	}
	if cfg.DashboardTheme != ThemeLight || cfg.DatasetCacheDir != "/tmp/afcon" {
		t.Fatalf("unexpected theme/dir: %s %s", cfg.DashboardTheme, cfg.DatasetCacheDir)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev/1"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})
}
