package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/dataset"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/player"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/team"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/teamstats"
	"github.com/riskibarqy/afcon-dashboard/internal/platform/cache"
	"github.com/riskibarqy/afcon-dashboard/internal/platform/logging"
)

// DataGenerator builds the mock tournament records. Implementations must be deterministic for
// a given SeedVersion.
type DataGenerator interface {
	SeedVersion() int
	Teams() []team.Team
	Squad(teamName string) []player.Player
	Statistics(teams []team.Team, squads map[string][]player.Player) []playerstats.Statistic
	Matches(teams []team.Team) []fixture.Match
	MatchDetails(m fixture.Match, home, away []player.Player) fixture.Details
}

type TournamentConfig struct {
	MemoTTL       time.Duration
	WarmupWorkers int
	Logger        *logging.Logger
}

// Snapshot is every top-level dataset the dashboard renders from.
type Snapshot struct {
	Teams       []team.Team             `json:"teams"`
	PlayerStats []playerstats.Statistic `json:"player_stats"`
	Matches     []fixture.Match         `json:"matches"`
	TeamStats   []teamstats.Aggregate   `json:"team_stats"`
}

// TournamentService serves the generated datasets cache-through: process memo, then the
// dataset store, then the generator. Freshly generated datasets are written back to the store.
type TournamentService struct {
	store   dataset.Store
	gen     DataGenerator
	memo    *cache.Store
	logger  *logging.Logger
	workers int
}

func NewTournamentService(store dataset.Store, gen DataGenerator, cfg TournamentConfig) *TournamentService {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	workers := cfg.WarmupWorkers
	if workers < 1 {
		workers = 1
	}

	return &TournamentService{
		store:   store,
		gen:     gen,
		memo:    cache.NewStore(cfg.MemoTTL),
		logger:  logger,
		workers: workers,
	}
}

func (s *TournamentService) key(name string) dataset.Key {
	return dataset.Key{Name: name, SchemaVersion: dataset.SchemaVersion, SeedVersion: s.gen.SeedVersion()}
}

// loadDataset resolves one dataset. A snapshot with a stale shape is regenerated and
// overwritten; any other storage failure, including corruption, is returned.
func loadDataset[T any](ctx context.Context, s *TournamentService, name string, build func(context.Context) ([]T, error)) ([]T, error) {
	key := s.key(name)
	return cache.Fetch(ctx, s.memo, key.String(), func(ctx context.Context) ([]T, error) {
		var records []T
		found, err := s.store.Load(ctx, key, &records)
		switch {
		case err == nil && found:
			s.logger.DebugContext(ctx, "dataset loaded from store", "dataset", key.String(), "rows", len(records))
			return records, nil
		case err != nil && dataset.IsSchemaMismatch(err):
			s.logger.WarnContext(ctx, "stale dataset snapshot, regenerating", "dataset", key.String(), "error", err)
		case err != nil:
			return nil, &DatasetError{Dataset: key.String(), Err: err}
		}

		records, err = build(ctx)
		if err != nil {
			return nil, &DatasetError{Dataset: key.String(), Err: err}
		}
		if err := s.store.Save(ctx, key, records, len(records)); err != nil {
			return nil, &DatasetError{Dataset: key.String(), Err: fmt.Errorf("save: %w", err)}
		}
		s.logger.InfoContext(ctx, "dataset generated", "dataset", key.String(), "rows", len(records))
		return records, nil
	})
}

func (s *TournamentService) Teams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Teams")
	defer span.End()

	return loadDataset(ctx, s, dataset.NameTeams, func(context.Context) ([]team.Team, error) {
		return s.gen.Teams(), nil
	})
}

// Squad returns the roster of a participating team.
func (s *TournamentService) Squad(ctx context.Context, teamName string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Squad")
	defer span.End()

	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	teams, err := s.Teams(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := team.Find(teams, teamName); !ok {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamName)
	}

	return loadDataset(ctx, s, dataset.SquadName(teamName), func(context.Context) ([]player.Player, error) {
		return s.gen.Squad(teamName), nil
	})
}

// WarmSquads resolves the squads of teams on a bounded worker pool.
func (s *TournamentService) WarmSquads(ctx context.Context, teams []team.Team) (map[string][]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.WarmSquads")
	defer span.End()

	pool, err := ants.NewPool(min(s.workers, max(len(teams), 1)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu       sync.Mutex
		workers  sync.WaitGroup
		firstErr error
	)
	out := make(map[string][]player.Player, len(teams))
	for _, item := range teams {
		name := item.Name
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			squad, err := s.Squad(ctx, name)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("squad %s: %w", name, err)
				}
				return
			}
			out[name] = squad
		}); err != nil {
			workers.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submit squad task to worker pool: %w", err)
			}
			mu.Unlock()
			break
		}
	}
	workers.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

func (s *TournamentService) Squads(ctx context.Context) (map[string][]player.Player, error) {
	teams, err := s.Teams(ctx)
	if err != nil {
		return nil, err
	}
	return s.WarmSquads(ctx, teams)
}

func (s *TournamentService) PlayerStatistics(ctx context.Context) ([]playerstats.Statistic, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.PlayerStatistics")
	defer span.End()

	return loadDataset(ctx, s, dataset.NamePlayerStats, func(ctx context.Context) ([]playerstats.Statistic, error) {
		teams, err := s.Teams(ctx)
		if err != nil {
			return nil, err
		}
		squads, err := s.WarmSquads(ctx, teams)
		if err != nil {
			return nil, err
		}
		return s.gen.Statistics(teams, squads), nil
	})
}

func (s *TournamentService) Matches(ctx context.Context) ([]fixture.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Matches")
	defer span.End()

	return loadDataset(ctx, s, dataset.NameMatches, func(ctx context.Context) ([]fixture.Match, error) {
		teams, err := s.Teams(ctx)
		if err != nil {
			return nil, err
		}
		return s.gen.Matches(teams), nil
	})
}

// MatchDetails expands one match with lineups and scorers. Unresolved sides get empty lineups.
func (s *TournamentService) MatchDetails(ctx context.Context, matchID int) (fixture.Details, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.MatchDetails")
	defer span.End()

	if matchID <= 0 {
		return fixture.Details{}, fmt.Errorf("%w: match id must be > 0", ErrInvalidInput)
	}
	matches, err := s.Matches(ctx)
	if err != nil {
		return fixture.Details{}, err
	}

	for _, m := range matches {
		if m.ID != matchID {
			continue
		}
		home, err := s.sideSquad(ctx, m.HomeTeam)
		if err != nil {
			return fixture.Details{}, err
		}
		away, err := s.sideSquad(ctx, m.AwayTeam)
		if err != nil {
			return fixture.Details{}, err
		}
		return s.gen.MatchDetails(m, home, away), nil
	}

	return fixture.Details{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
}

func (s *TournamentService) sideSquad(ctx context.Context, name string) ([]player.Player, error) {
	if name == fixture.Placeholder {
		return nil, nil
	}
	return s.Squad(ctx, name)
}

// Datasets lists what the store currently holds.
func (s *TournamentService) Datasets(ctx context.Context) ([]dataset.Info, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Datasets")
	defer span.End()

	items, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	return items, nil
}

// PurgeCache drops every stored snapshot and the in-process memo. It returns the number of
// snapshots removed.
func (s *TournamentService) PurgeCache(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.PurgeCache")
	defer span.End()

	items, err := s.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list datasets: %w", err)
	}
	removed := 0
	for _, item := range items {
		if err := s.store.Delete(ctx, item.Key); err != nil {
			return removed, fmt.Errorf("delete dataset %s: %w", item.Key.Name, err)
		}
		removed++
	}
	s.memo.Purge()
	s.logger.InfoContext(ctx, "dataset cache purged", "removed", removed)
	return removed, nil
}

// DropDataset removes one dataset, every stored version of it, and its memo entry so the next
// read regenerates it. NameSquads drops all squads.
func (s *TournamentService) DropDataset(ctx context.Context, name string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.DropDataset")
	defer span.End()

	name = strings.TrimSpace(name)
	if err := (dataset.Key{Name: name}).ValidateName(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	selects := func(k dataset.Key) bool { return k.Name == name }
	if name == dataset.NameSquads {
		selects = func(k dataset.Key) bool { return strings.HasPrefix(k.Name, dataset.SquadPrefix) }
	}

	items, err := s.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list datasets: %w", err)
	}
	removed := 0
	for _, item := range items {
		if !selects(item.Key) {
			continue
		}
		if err := s.store.Delete(ctx, item.Key); err != nil {
			return removed, fmt.Errorf("delete dataset %s: %w", item.Key.Name, err)
		}
		removed++
	}

	if name == dataset.NameSquads {
		s.memo.DeletePrefix(ctx, dataset.SquadPrefix)
	} else {
		s.memo.Delete(ctx, s.key(name).String())
	}
	s.logger.InfoContext(ctx, "dataset dropped", "dataset", name, "removed", removed)
	return removed, nil
}

func (s *TournamentService) MemoStats() cache.Stats {
	return s.memo.Stats()
}
