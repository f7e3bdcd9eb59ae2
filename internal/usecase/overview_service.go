package usecase

import (
	"cmp"
	"context"
	"slices"

	"github.com/riskibarqy/afcon-dashboard/internal/domain/team"
)

// Overview holds the headline metrics of the tournament.
type Overview struct {
	Teams          int         `json:"teams"`
	Groups         int         `json:"groups"`
	Players        int         `json:"players"`
	PlayersPerTeam int         `json:"players_per_team"`
	TotalValue     float64     `json:"total_value"`
	MeanValue      float64     `json:"mean_value"`
	Matches        int         `json:"matches"`
	Goals          int         `json:"goals"`
	GoalsPerMatch  float64     `json:"goals_per_match"`
	TopTeams       []team.Team `json:"top_teams"`
}

const overviewTopTeams = 3

type OverviewService struct {
	aggregation *AggregationService
}

func NewOverviewService(aggregation *AggregationService) *OverviewService {
	return &OverviewService{aggregation: aggregation}
}

func (s *OverviewService) Get(ctx context.Context) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverviewService.Get")
	defer span.End()

	snapshot, err := s.aggregation.LoadAll(ctx)
	if err != nil {
		return Overview{}, err
	}
	return BuildOverview(snapshot), nil
}

func BuildOverview(snapshot Snapshot) Overview {
	out := Overview{
		Teams:   len(snapshot.Teams),
		Players: len(snapshot.PlayerStats),
		Matches: len(snapshot.Matches),
	}

	groups := make(map[string]struct{}, len(team.Groups))
	for _, t := range snapshot.Teams {
		groups[t.Group] = struct{}{}
		out.TotalValue += t.SquadValue
	}
	out.Groups = len(groups)
	if out.Teams > 0 {
		out.MeanValue = out.TotalValue / float64(out.Teams)
		out.PlayersPerTeam = out.Players / out.Teams
	}

	for _, row := range snapshot.TeamStats {
		out.Goals += row.GoalsScored
	}
	if out.Matches > 0 {
		out.GoalsPerMatch = float64(out.Goals) / float64(out.Matches)
	}

	out.TopTeams = TopTeamsByValue(snapshot.Teams, overviewTopTeams)
	return out
}

// TopTeamsByValue returns the n most valuable teams. Equal values keep input order.
func TopTeamsByValue(teams []team.Team, n int) []team.Team {
	out := slices.Clone(teams)
	slices.SortStableFunc(out, func(a, b team.Team) int {
		return cmp.Compare(b.SquadValue, a.SquadValue)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
