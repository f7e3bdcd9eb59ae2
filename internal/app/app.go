package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/afcon-dashboard/internal/config"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/dataset"
	"github.com/riskibarqy/afcon-dashboard/internal/infrastructure/datastore/file"
	"github.com/riskibarqy/afcon-dashboard/internal/infrastructure/datastore/memory"
	"github.com/riskibarqy/afcon-dashboard/internal/infrastructure/datastore/postgres"
	"github.com/riskibarqy/afcon-dashboard/internal/infrastructure/generator"
	"github.com/riskibarqy/afcon-dashboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/afcon-dashboard/internal/platform/logging"
	"github.com/riskibarqy/afcon-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/afcon-dashboard/internal/usecase"
	"github.com/riskibarqy/afcon-dashboard/internal/visualization"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// App holds the wired services behind the dashboard and the generator CLI.
type App struct {
	Server      *http.Server
	Tournament  *usecase.TournamentService
	Aggregation *usecase.AggregationService
	Players     *usecase.PlayerService

	logger  *logging.Logger
	closers []func() error
}

// New wires the dataset store, the generator, every use case and the HTTP router.
func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	theme, err := visualization.ThemeByName(cfg.DashboardTheme)
	if err != nil {
		return nil, fmt.Errorf("resolve dashboard theme: %w", err)
	}

	a := &App{logger: logger}
	if err := a.wireServices(cfg); err != nil {
		_ = a.Close()
		return nil, err
	}

	matches := usecase.NewMatchService(a.Tournament)
	overview := usecase.NewOverviewService(a.Aggregation)
	history := usecase.NewHistoryService()
	charts := usecase.NewChartService(a.Aggregation, a.Players, visualization.NewBuilder(theme))

	handler := httpapi.NewHandler(
		a.Tournament,
		a.Aggregation,
		a.Players,
		matches,
		overview,
		history,
		charts,
		cfg.DashboardPageSize,
		logger.Named("httpapi"),
	)
	router := httpapi.NewRouter(handler, logger.Named("http"), cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if a.Server.Addr == "" {
		_ = a.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return a, nil
}

// NewServices wires the data layer only, for commands that do not serve HTTP.
func NewServices(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	a := &App{logger: logger}
	if err := a.wireServices(cfg); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) wireServices(cfg config.Config) error {
	store, err := a.openDatasetStore(cfg)
	if err != nil {
		return err
	}

	a.Tournament = usecase.NewTournamentService(store, generator.New(cfg.GeneratorSeedVersion), usecase.TournamentConfig{
		MemoTTL:       cfg.MemoCacheTTL,
		WarmupWorkers: cfg.SquadWarmupWorkers,
		Logger:        a.logger.Named("tournament"),
	})
	a.Aggregation = usecase.NewAggregationService(a.Tournament)
	a.Players = usecase.NewPlayerService(a.Tournament)
	return nil
}

func (a *App) openDatasetStore(cfg config.Config) (dataset.Store, error) {
	switch cfg.DatasetStore {
	case config.StoreMemory:
		return memory.NewStore(), nil
	case config.StorePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		return postgres.NewStore(db, resilience.CircuitBreakerConfig{
			Enabled:          cfg.DBCircuitEnabled,
			FailureThreshold: cfg.DBCircuitFailureCount,
			OpenTimeout:      cfg.DBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
		}, a.logger.Named("datastore.postgres")), nil
	default:
		store, err := file.NewStore(cfg.DatasetCacheDir)
		if err != nil {
			return nil, fmt.Errorf("open file dataset store: %w", err)
		}
		return store, nil
	}
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := DatabaseURL(cfg)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Preload resolves every top-level dataset so the first page view is served from memory.
func (a *App) Preload(ctx context.Context) (usecase.Snapshot, error) {
	snapshot, err := a.Aggregation.LoadAll(ctx)
	if err != nil {
		return usecase.Snapshot{}, err
	}
	a.logger.InfoContext(ctx, "datasets preloaded",
		"teams", len(snapshot.Teams),
		"player_stats", len(snapshot.PlayerStats),
		"matches", len(snapshot.Matches),
		"team_stats", len(snapshot.TeamStats),
	)
	return snapshot, nil
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
