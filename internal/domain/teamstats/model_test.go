package teamstats

import "testing"

func TestAggregateRecord(t *testing.T) {
	t.Parallel()

	var row Aggregate
	row.Record(2, 1)
	row.Record(0, 0)
	row.Record(1, 3)

	if row.MatchesPlayed != 3 || row.Wins != 1 || row.Draws != 1 || row.Losses != 1 {
		t.Fatalf("unexpected record counters: %+v", row)
	}
	if row.GoalsScored != 3 || row.GoalsConceded != 4 || row.GoalDifference != -1 {
		t.Fatalf("unexpected goal counters: %+v", row)
	}
	if row.Points != 4 {
		t.Fatalf("unexpected points: got=%d want=4", row.Points)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	got := Summarize("Group A", []Aggregate{
		{TeamName: "Morocco", SquadValue: 400, AvgAge: 26, GoalsScored: 3},
		{TeamName: "Mali", SquadValue: 200, AvgAge: 28, GoalsScored: 1},
	})
	if got.Teams != 2 || got.TotalValue != 600 || got.MeanValue != 300 {
		t.Fatalf("unexpected value summary: %+v", got)
	}
	if got.AvgAge != 27 || got.GoalsScored != 4 {
		t.Fatalf("unexpected age/goal summary: %+v", got)
	}

	empty := Summarize("Group B", nil)
	if empty.Teams != 0 || empty.MeanValue != 0 || empty.AvgAge != 0 {
		t.Fatalf("expected zero summary, got %+v", empty)
	}
}
