package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/afcon-dashboard/internal/domain/player"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/team"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/teamstats"
	"github.com/riskibarqy/afcon-dashboard/internal/visualization"
)

const (
	ChartTeamValues           = "team-values"
	ChartGoalsByTeam          = "goals-by-team"
	ChartTopScorers           = "top-scorers"
	ChartTopAssists           = "top-assists"
	ChartAgeDistribution      = "age-distribution"
	ChartValueDistribution    = "value-distribution"
	ChartLeagueDistribution   = "league-distribution"
	ChartPositionDistribution = "position-distribution"
	ChartValueBoxplot         = "value-boxplot"
	ChartValueVsPerformance   = "value-vs-performance"
	ChartAgeVsValue           = "age-vs-value"
	ChartCorrelation          = "correlation"
	ChartTeamRadar            = "team-radar"
	ChartPerformanceEvolution = "performance-evolution"
	ChartGroupComparison      = "group-comparison"
)

// ChartNames lists every chart the service can build.
var ChartNames = []string{
	ChartTeamValues, ChartGoalsByTeam, ChartTopScorers, ChartTopAssists,
	ChartAgeDistribution, ChartValueDistribution, ChartLeagueDistribution, ChartPositionDistribution,
	ChartValueBoxplot, ChartValueVsPerformance, ChartAgeVsValue, ChartCorrelation,
	ChartTeamRadar, ChartPerformanceEvolution, ChartGroupComparison,
}

const (
	MinRadarTeams     = 2
	MaxRadarTeams     = 4
	DefaultRadarTeams = 3
)

// ChartRequest names a chart and its optional parameters. Group narrows team bar charts,
// Position and Team narrow player charts, Teams selects radar profiles and Team the
// performance timeline.
type ChartRequest struct {
	Name     string
	TopN     int
	Group    string
	Position string
	Team     string
	Teams    []string
}

type ChartService struct {
	tournament  *TournamentService
	aggregation *AggregationService
	players     *PlayerService
	builder     *visualization.Builder
}

func NewChartService(aggregation *AggregationService, players *PlayerService, builder *visualization.Builder) *ChartService {
	return &ChartService{
		tournament:  aggregation.tournament,
		aggregation: aggregation,
		players:     players,
		builder:     builder,
	}
}

func (s *ChartService) Theme() visualization.Theme {
	return s.builder.Theme()
}

func (s *ChartService) Build(ctx context.Context, req ChartRequest) (visualization.Figure, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChartService.Build")
	defer span.End()

	switch strings.TrimSpace(req.Name) {
	case ChartTeamValues:
		rows, err := s.groupRows(ctx, req.Group)
		if err != nil {
			return visualization.Figure{}, err
		}
		return s.builder.TeamValues(rows, req.TopN), nil
	case ChartGoalsByTeam:
		rows, err := s.groupRows(ctx, req.Group)
		if err != nil {
			return visualization.Figure{}, err
		}
		return s.builder.GoalsByTeam(rows), nil
	case ChartTopScorers, ChartTopAssists, ChartPositionDistribution:
		items, filter, err := s.players.statistics(ctx, PlayerFilter{Position: req.Position, Team: req.Team, TopN: req.TopN})
		if err != nil {
			return visualization.Figure{}, err
		}
		switch req.Name {
		case ChartTopScorers:
			return s.builder.TopScorers(items, filter.TopN), nil
		case ChartTopAssists:
			return s.builder.TopAssists(items, filter.TopN), nil
		default:
			return s.builder.PositionDistribution(items), nil
		}
	case ChartAgeDistribution, ChartValueDistribution, ChartLeagueDistribution, ChartValueBoxplot:
		teams, squads, err := s.squads(ctx)
		if err != nil {
			return visualization.Figure{}, err
		}
		players := flattenSquads(teams, squads)
		switch req.Name {
		case ChartAgeDistribution:
			return s.builder.AgeDistribution(players), nil
		case ChartValueDistribution:
			return s.builder.ValueDistribution(players), nil
		case ChartLeagueDistribution:
			return s.builder.LeagueDistribution(players), nil
		default:
			return s.builder.ValueBoxplot(teams, squads), nil
		}
	case ChartValueVsPerformance, ChartAgeVsValue, ChartCorrelation:
		rows, err := s.aggregation.AggregateTeamStats(ctx)
		if err != nil {
			return visualization.Figure{}, err
		}
		switch req.Name {
		case ChartValueVsPerformance:
			return s.builder.ValueVsPerformance(rows), nil
		case ChartAgeVsValue:
			return s.builder.AgeVsValue(rows), nil
		default:
			return s.builder.CorrelationHeatmap(rows), nil
		}
	case ChartTeamRadar:
		rows, err := s.aggregation.AggregateTeamStats(ctx)
		if err != nil {
			return visualization.Figure{}, err
		}
		names, err := s.RadarSelection(ctx, req.Teams)
		if err != nil {
			return visualization.Figure{}, err
		}
		return s.builder.TeamRadar(rows, names), nil
	case ChartPerformanceEvolution:
		name, err := s.requireTeam(ctx, req.Team)
		if err != nil {
			return visualization.Figure{}, err
		}
		matches, err := s.tournament.Matches(ctx)
		if err != nil {
			return visualization.Figure{}, err
		}
		return s.builder.PerformanceEvolution(matches, name), nil
	case ChartGroupComparison:
		groups, err := s.aggregation.GroupComparison(ctx)
		if err != nil {
			return visualization.Figure{}, err
		}
		return s.builder.GroupComparison(groups), nil
	default:
		return visualization.Figure{}, fmt.Errorf("%w: chart=%s", ErrNotFound, req.Name)
	}
}

func (s *ChartService) groupRows(ctx context.Context, group string) ([]teamstats.Aggregate, error) {
	rows, err := s.aggregation.AggregateTeamStats(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(group) == "" {
		return rows, nil
	}
	label, ok := NormalizeGroup(group)
	if !ok {
		return nil, fmt.Errorf("%w: group=%s", ErrNotFound, group)
	}
	return teamstats.FilterGroup(rows, label), nil
}

func (s *ChartService) squads(ctx context.Context) ([]team.Team, map[string][]player.Player, error) {
	teams, err := s.tournament.Teams(ctx)
	if err != nil {
		return nil, nil, err
	}
	squads, err := s.tournament.WarmSquads(ctx, teams)
	if err != nil {
		return nil, nil, err
	}
	return teams, squads, nil
}

func flattenSquads(teams []team.Team, squads map[string][]player.Player) []player.Player {
	out := make([]player.Player, 0, len(teams)*player.SquadSize)
	for _, t := range teams {
		out = append(out, squads[t.Name]...)
	}
	return out
}

// RadarSelection validates a radar comparison. An empty selection defaults to the three most
// valuable teams.
func (s *ChartService) RadarSelection(ctx context.Context, names []string) ([]string, error) {
	teams, err := s.tournament.Teams(ctx)
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			selected = append(selected, name)
		}
	}
	if len(selected) == 0 {
		for _, t := range TopTeamsByValue(teams, DefaultRadarTeams) {
			selected = append(selected, t.Name)
		}
		return selected, nil
	}
	if len(selected) < MinRadarTeams || len(selected) > MaxRadarTeams {
		return nil, fmt.Errorf("%w: select between %d and %d teams", ErrInvalidInput, MinRadarTeams, MaxRadarTeams)
	}
	for _, name := range selected {
		if _, ok := team.Find(teams, name); !ok {
			return nil, fmt.Errorf("%w: team=%s", ErrNotFound, name)
		}
	}
	return selected, nil
}

func (s *ChartService) requireTeam(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	teams, err := s.tournament.Teams(ctx)
	if err != nil {
		return "", err
	}
	if _, ok := team.Find(teams, name); !ok {
		return "", fmt.Errorf("%w: team=%s", ErrNotFound, name)
	}
	return name, nil
}
