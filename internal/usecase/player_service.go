package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/afcon-dashboard/internal/domain/player"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/team"
)

const (
	DefaultTopN = 15
	MinTopN     = 5
	MaxTopN     = 30
)

// PlayerFilter narrows player listings. Empty Position or Team means all.
type PlayerFilter struct {
	Position string
	Team     string
	TopN     int
}

type PlayerService struct {
	tournament *TournamentService
}

func NewPlayerService(tournament *TournamentService) *PlayerService {
	return &PlayerService{tournament: tournament}
}

// Normalize trims the filter, applies the default TopN and validates every field.
func (s *PlayerService) Normalize(ctx context.Context, filter PlayerFilter) (PlayerFilter, error) {
	filter.Position = strings.TrimSpace(filter.Position)
	filter.Team = strings.TrimSpace(filter.Team)
	if filter.TopN == 0 {
		filter.TopN = DefaultTopN
	}
	if filter.TopN < MinTopN || filter.TopN > MaxTopN {
		return PlayerFilter{}, fmt.Errorf("%w: top must be between %d and %d", ErrInvalidInput, MinTopN, MaxTopN)
	}
	if filter.Position != "" {
		if _, ok := player.ParsePosition(filter.Position); !ok {
			return PlayerFilter{}, fmt.Errorf("%w: position=%s", ErrInvalidInput, filter.Position)
		}
	}
	if filter.Team != "" {
		teams, err := s.tournament.Teams(ctx)
		if err != nil {
			return PlayerFilter{}, err
		}
		if _, ok := team.Find(teams, filter.Team); !ok {
			return PlayerFilter{}, fmt.Errorf("%w: team=%s", ErrNotFound, filter.Team)
		}
	}
	return filter, nil
}

func (f PlayerFilter) matches(pos player.Position, teamName string) bool {
	if f.Position != "" && string(pos) != f.Position {
		return false
	}
	if f.Team != "" && teamName != f.Team {
		return false
	}
	return true
}

// Statistics returns the player statistics that pass the filter, in generation order.
func (s *PlayerService) Statistics(ctx context.Context, filter PlayerFilter) ([]playerstats.Statistic, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Statistics")
	defer span.End()

	items, _, err := s.statistics(ctx, filter)
	return items, err
}

func (s *PlayerService) statistics(ctx context.Context, filter PlayerFilter) ([]playerstats.Statistic, PlayerFilter, error) {
	filter, err := s.Normalize(ctx, filter)
	if err != nil {
		return nil, PlayerFilter{}, err
	}
	items, err := s.tournament.PlayerStatistics(ctx)
	if err != nil {
		return nil, PlayerFilter{}, err
	}
	return filterStatistics(items, filter), filter, nil
}

func filterStatistics(items []playerstats.Statistic, filter PlayerFilter) []playerstats.Statistic {
	out := make([]playerstats.Statistic, 0, len(items))
	for _, item := range items {
		if filter.matches(item.Position, item.Team) {
			out = append(out, item)
		}
	}
	return out
}

// ListStatistics pages through the filtered statistics.
func (s *PlayerService) ListStatistics(ctx context.Context, filter PlayerFilter, req PageRequest) (Page[playerstats.Statistic], error) {
	if err := req.Validate(); err != nil {
		return Page[playerstats.Statistic]{}, err
	}
	items, err := s.Statistics(ctx, filter)
	if err != nil {
		return Page[playerstats.Statistic]{}, err
	}
	return Paginate(items, req)
}

// TopScorers ranks players with at least one goal. Equal goal counts keep generation order.
func (s *PlayerService) TopScorers(ctx context.Context, filter PlayerFilter) ([]playerstats.Statistic, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.TopScorers")
	defer span.End()

	items, filter, err := s.statistics(ctx, filter)
	if err != nil {
		return nil, err
	}
	return topBy(items, filter.TopN, func(v playerstats.Statistic) int { return v.Goals }), nil
}

// TopAssists ranks players with at least one assist.
func (s *PlayerService) TopAssists(ctx context.Context, filter PlayerFilter) ([]playerstats.Statistic, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.TopAssists")
	defer span.End()

	items, filter, err := s.statistics(ctx, filter)
	if err != nil {
		return nil, err
	}
	return topBy(items, filter.TopN, func(v playerstats.Statistic) int { return v.Assists }), nil
}

func topBy(items []playerstats.Statistic, n int, metric func(playerstats.Statistic) int) []playerstats.Statistic {
	out := make([]playerstats.Statistic, 0, len(items))
	for _, item := range items {
		if metric(item) > 0 {
			out = append(out, item)
		}
	}
	slices.SortStableFunc(out, func(a, b playerstats.Statistic) int {
		return cmp.Compare(metric(b), metric(a))
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// MostValuable ranks squad members by market value across every participating team.
func (s *PlayerService) MostValuable(ctx context.Context, filter PlayerFilter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.MostValuable")
	defer span.End()

	filter, err := s.Normalize(ctx, filter)
	if err != nil {
		return nil, err
	}
	teams, err := s.tournament.Teams(ctx)
	if err != nil {
		return nil, err
	}
	squads, err := s.tournament.WarmSquads(ctx, teams)
	if err != nil {
		return nil, err
	}

	out := make([]player.Player, 0, len(teams)*player.SquadSize)
	for _, t := range teams {
		for _, p := range squads[t.Name] {
			if filter.matches(p.Position, t.Name) {
				out = append(out, p)
			}
		}
	}
	slices.SortStableFunc(out, func(a, b player.Player) int {
		return cmp.Compare(b.MarketValue, a.MarketValue)
	})
	if len(out) > filter.TopN {
		out = out[:filter.TopN]
	}
	return out, nil
}

// Summary totals the filtered statistics.
func (s *PlayerService) Summary(ctx context.Context, filter PlayerFilter) (playerstats.Summary, error) {
	items, err := s.Statistics(ctx, filter)
	if err != nil {
		return playerstats.Summary{}, err
	}
	return playerstats.Summarize(items), nil
}

// Positions lists the positions present in the statistics, sorted by name.
func (s *PlayerService) Positions(ctx context.Context) ([]string, error) {
	items, err := s.tournament.PlayerStatistics(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(player.AllPositions))
	out := make([]string, 0, len(player.AllPositions))
	for _, item := range items {
		if _, ok := seen[string(item.Position)]; ok {
			continue
		}
		seen[string(item.Position)] = struct{}{}
		out = append(out, string(item.Position))
	}
	slices.Sort(out)
	return out, nil
}
