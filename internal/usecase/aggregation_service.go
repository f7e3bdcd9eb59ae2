package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/afcon-dashboard/internal/domain/dataset"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/player"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/standing"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/team"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/teamstats"
	"github.com/sourcegraph/conc/iter"
)

// AggregationService derives per-team and per-group rows from the generated datasets.
type AggregationService struct {
	tournament *TournamentService
}

func NewAggregationService(tournament *TournamentService) *AggregationService {
	return &AggregationService{tournament: tournament}
}

// AggregateTeamStats returns one row per participating team. Match counters only count
// finished matches.
func (s *AggregationService) AggregateTeamStats(ctx context.Context) ([]teamstats.Aggregate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AggregationService.AggregateTeamStats")
	defer span.End()

	return loadDataset(ctx, s.tournament, dataset.NameTeamStats, func(ctx context.Context) ([]teamstats.Aggregate, error) {
		teams, err := s.tournament.Teams(ctx)
		if err != nil {
			return nil, err
		}
		squads, err := s.tournament.WarmSquads(ctx, teams)
		if err != nil {
			return nil, err
		}
		matches, err := s.tournament.Matches(ctx)
		if err != nil {
			return nil, err
		}
		return buildTeamStats(teams, squads, matches), nil
	})
}

func buildTeamStats(teams []team.Team, squads map[string][]player.Player, matches []fixture.Match) []teamstats.Aggregate {
	finished := fixture.Finished(matches)
	return iter.Map(teams, func(t *team.Team) teamstats.Aggregate {
		squad := squads[t.Name]
		row := teamstats.Aggregate{
			TeamName:     t.Name,
			Group:        t.Group,
			SquadValue:   t.SquadValue,
			AvgAge:       player.AverageAge(squad),
			TotalPlayers: len(squad),
		}
		for _, m := range finished {
			if scored, conceded, ok := m.GoalsFor(t.Name); ok {
				row.Record(scored, conceded)
			}
		}
		return row
	})
}

// NormalizeGroup accepts "Group C", "group c" or "C" and returns the canonical label.
func NormalizeGroup(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) == 1 {
		raw = "Group " + raw
	}
	for _, g := range team.Groups {
		if strings.EqualFold(g, raw) {
			return g, true
		}
	}
	return "", false
}

// GetGroupStandings ranks the teams of one group. Fully tied teams keep draw order.
func (s *AggregationService) GetGroupStandings(ctx context.Context, group string) ([]standing.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AggregationService.GetGroupStandings")
	defer span.End()

	label, ok := NormalizeGroup(group)
	if !ok {
		return nil, fmt.Errorf("%w: group=%s", ErrNotFound, group)
	}
	rows, err := s.AggregateTeamStats(ctx)
	if err != nil {
		return nil, err
	}

	return standing.Table(teamstats.FilterGroup(rows, label)), nil
}

func (s *AggregationService) GroupSummary(ctx context.Context, group string) (teamstats.GroupSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AggregationService.GroupSummary")
	defer span.End()

	label, ok := NormalizeGroup(group)
	if !ok {
		return teamstats.GroupSummary{}, fmt.Errorf("%w: group=%s", ErrNotFound, group)
	}
	rows, err := s.AggregateTeamStats(ctx)
	if err != nil {
		return teamstats.GroupSummary{}, err
	}

	return teamstats.Summarize(label, teamstats.FilterGroup(rows, label)), nil
}

// GroupComparison summarizes every group in draw order.
func (s *AggregationService) GroupComparison(ctx context.Context) ([]teamstats.GroupSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AggregationService.GroupComparison")
	defer span.End()

	rows, err := s.AggregateTeamStats(ctx)
	if err != nil {
		return nil, err
	}
	return compareGroups(rows), nil
}

func compareGroups(rows []teamstats.Aggregate) []teamstats.GroupSummary {
	out := make([]teamstats.GroupSummary, 0, len(team.Groups))
	for _, g := range team.Groups {
		out = append(out, teamstats.Summarize(g, teamstats.FilterGroup(rows, g)))
	}
	return out
}

// LoadAll resolves the four top-level datasets every page renders from. Any failure aborts
// the whole snapshot.
func (s *AggregationService) LoadAll(ctx context.Context) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AggregationService.LoadAll")
	defer span.End()

	teams, err := s.tournament.Teams(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load teams: %w", err)
	}
	stats, err := s.tournament.PlayerStatistics(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load player statistics: %w", err)
	}
	matches, err := s.tournament.Matches(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load matches: %w", err)
	}
	teamStats, err := s.AggregateTeamStats(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load team stats: %w", err)
	}

	return Snapshot{
		Teams:       teams,
		PlayerStats: stats,
		Matches:     matches,
		TeamStats:   teamStats,
	}, nil
}
