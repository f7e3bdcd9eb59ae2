package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/afcon-dashboard/internal/infrastructure/datastore/memory"
	"github.com/riskibarqy/afcon-dashboard/internal/visualization"
)

func newTestCharts(t *testing.T) *ChartService {
	t.Helper()

	tournament, _ := newTestTournament(t, memory.NewStore())
	aggregation := NewAggregationService(tournament)
	return NewChartService(aggregation, NewPlayerService(tournament), visualization.NewBuilder(visualization.DarkTheme()))
}

func TestChartService_BuildsEveryChart(t *testing.T) {
	t.Parallel()

	svc := newTestCharts(t)
	ctx := context.Background()

	for _, name := range ChartNames {
		t.Run(name, func(t *testing.T) {
			req := ChartRequest{Name: name}
			if name == ChartPerformanceEvolution {
				req.Team = "Morocco"
			}
			fig, err := svc.Build(ctx, req)
			if err != nil {
				t.Fatalf("build %s: %v", name, err)
			}
			if fig.Layout.Title == nil || fig.Layout.Title.Text == "" {
				t.Fatalf("chart %s has no title", name)
			}
		})
	}
}

func TestChartService_Parameters(t *testing.T) {
	t.Parallel()

	svc := newTestCharts(t)
	ctx := context.Background()

	t.Run("group filter", func(t *testing.T) {
		fig, err := svc.Build(ctx, ChartRequest{Name: ChartTeamValues, Group: "B"})
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if got := len(fig.Data[0].Y.([]string)); got != 4 {
			t.Fatalf("unexpected bar count: got=%d want=4", got)
		}
	})

	t.Run("default radar picks top three", func(t *testing.T) {
		fig, err := svc.Build(ctx, ChartRequest{Name: ChartTeamRadar})
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if len(fig.Data) != DefaultRadarTeams || fig.Data[0].Name != "Morocco" {
			t.Fatalf("unexpected radar traces: %d", len(fig.Data))
		}
	})

	tests := []struct {
		name    string
		req     ChartRequest
		wantErr error
	}{
		{name: "unknown chart", req: ChartRequest{Name: "sankey"}, wantErr: ErrNotFound},
		{name: "unknown group", req: ChartRequest{Name: ChartGoalsByTeam, Group: "Group Q"}, wantErr: ErrNotFound},
		{name: "radar single team", req: ChartRequest{Name: ChartTeamRadar, Teams: []string{"Egypt"}}, wantErr: ErrInvalidInput},
		{name: "radar too many", req: ChartRequest{Name: ChartTeamRadar, Teams: []string{"Egypt", "Mali", "Angola", "Uganda", "Guinea"}}, wantErr: ErrInvalidInput},
		{name: "radar unknown team", req: ChartRequest{Name: ChartTeamRadar, Teams: []string{"Egypt", "Brazil"}}, wantErr: ErrNotFound},
		{name: "evolution without team", req: ChartRequest{Name: ChartPerformanceEvolution}, wantErr: ErrInvalidInput},
		{name: "scorers top out of range", req: ChartRequest{Name: ChartTopScorers, TopN: 50}, wantErr: ErrInvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Build(ctx, tc.req)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
