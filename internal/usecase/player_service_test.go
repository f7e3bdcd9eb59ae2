package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/afcon-dashboard/internal/domain/player"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/afcon-dashboard/internal/infrastructure/datastore/memory"
)

func newTestPlayers(t *testing.T) *PlayerService {
	t.Helper()

	svc, _ := newTestTournament(t, memory.NewStore())
	return NewPlayerService(svc)
}

func TestPlayerService_Normalize(t *testing.T) {
	t.Parallel()

	svc := newTestPlayers(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  PlayerFilter
		wantErr error
		wantTop int
	}{
		{name: "defaults", filter: PlayerFilter{}, wantTop: DefaultTopN},
		{name: "bounds ok", filter: PlayerFilter{TopN: MaxTopN, Position: " Forward ", Team: "Senegal"}, wantTop: MaxTopN},
		{name: "top too small", filter: PlayerFilter{TopN: 4}, wantErr: ErrInvalidInput},
		{name: "top too large", filter: PlayerFilter{TopN: 31}, wantErr: ErrInvalidInput},
		{name: "unknown position", filter: PlayerFilter{Position: "Winger"}, wantErr: ErrInvalidInput},
		{name: "unknown team", filter: PlayerFilter{Team: "Brazil"}, wantErr: ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Normalize(ctx, tc.filter)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalize: %v", err)
			}
			if got.TopN != tc.wantTop {
				t.Fatalf("unexpected top: got=%d want=%d", got.TopN, tc.wantTop)
			}
		})
	}
}

func TestPlayerService_StatisticsFilters(t *testing.T) {
	t.Parallel()

	svc := newTestPlayers(t)
	ctx := context.Background()

	items, err := svc.Statistics(ctx, PlayerFilter{Position: string(player.PositionGoalkeeper), Team: "Egypt"})
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("unexpected goalkeeper count: got=%d want=3", len(items))
	}
	for _, item := range items {
		if item.Team != "Egypt" || item.Position != player.PositionGoalkeeper {
			t.Fatalf("filter leaked row: %+v", item)
		}
	}
}

func TestPlayerService_Leaderboards(t *testing.T) {
	t.Parallel()

	svc := newTestPlayers(t)
	ctx := context.Background()

	assertRanked := func(t *testing.T, items []playerstats.Statistic, metric func(playerstats.Statistic) int, limit int) {
		t.Helper()
		if len(items) > limit {
			t.Fatalf("leaderboard exceeds limit: got=%d limit=%d", len(items), limit)
		}
		for i, item := range items {
			if metric(item) <= 0 {
				t.Fatalf("leaderboard contains zero row: %+v", item)
			}
			if i > 0 && metric(items[i-1]) < metric(item) {
				t.Fatalf("leaderboard not sorted at %d", i)
			}
		}
	}

	scorers, err := svc.TopScorers(ctx, PlayerFilter{TopN: 10})
	if err != nil {
		t.Fatalf("top scorers: %v", err)
	}
	if len(scorers) == 0 {
		t.Fatalf("expected at least one scorer")
	}
	assertRanked(t, scorers, func(v playerstats.Statistic) int { return v.Goals }, 10)

	assists, err := svc.TopAssists(ctx, PlayerFilter{})
	if err != nil {
		t.Fatalf("top assists: %v", err)
	}
	assertRanked(t, assists, func(v playerstats.Statistic) int { return v.Assists }, DefaultTopN)

	keepers, err := svc.TopScorers(ctx, PlayerFilter{Position: string(player.PositionGoalkeeper)})
	if err != nil {
		t.Fatalf("goalkeeper scorers: %v", err)
	}
	if len(keepers) != 0 {
		t.Fatalf("goalkeepers never score, got %d", len(keepers))
	}
}

func TestPlayerService_MostValuable(t *testing.T) {
	t.Parallel()

	svc := newTestPlayers(t)
	items, err := svc.MostValuable(context.Background(), PlayerFilter{TopN: 5, Team: "Morocco"})
	if err != nil {
		t.Fatalf("most valuable: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("unexpected count: got=%d want=5", len(items))
	}
	for i, item := range items {
		if item.Nationality != "Morocco" {
			t.Fatalf("unexpected team: %+v", item)
		}
		if i > 0 && items[i-1].MarketValue < item.MarketValue {
			t.Fatalf("not sorted by value at %d", i)
		}
	}
}

func TestPlayerService_SummaryAndPages(t *testing.T) {
	t.Parallel()

	svc := newTestPlayers(t)
	ctx := context.Background()

	summary, err := svc.Summary(ctx, PlayerFilter{Team: "Mali"})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Players != player.SquadSize {
		t.Fatalf("unexpected player count: got=%d want=%d", summary.Players, player.SquadSize)
	}

	page, err := svc.ListStatistics(ctx, PlayerFilter{}, PageRequest{Page: 2, Size: 50})
	if err != nil {
		t.Fatalf("list statistics: %v", err)
	}
	if len(page.Items) != 50 || page.TotalItems != 24*player.SquadSize || page.TotalPages != 12 {
		t.Fatalf("unexpected page: items=%d total=%d pages=%d", len(page.Items), page.TotalItems, page.TotalPages)
	}

	positions, err := svc.Positions(ctx)
	if err != nil {
		t.Fatalf("positions: %v", err)
	}
	want := []string{"Defender", "Forward", "Goalkeeper", "Midfielder"}
	for i := range want {
		if positions[i] != want[i] {
			t.Fatalf("unexpected positions: %v", positions)
		}
	}
}
