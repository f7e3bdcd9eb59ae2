package standing

import (
	"cmp"
	"slices"

	"github.com/riskibarqy/afcon-dashboard/internal/domain/teamstats"
)

// Compare orders two rows for a group table: points, then goal difference, then goals scored,
// all descending. Rows tied on every key compare equal.
func Compare(a, b teamstats.Aggregate) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalDifference, a.GoalDifference); c != 0 {
		return c
	}
	return cmp.Compare(b.GoalsScored, a.GoalsScored)
}

// Rank returns a sorted copy. Fully tied rows keep their input order.
func Rank(rows []teamstats.Aggregate) []teamstats.Aggregate {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, Compare)
	return out
}

// Row is a ranked table entry.
type Row struct {
	Position int
	teamstats.Aggregate
}

func Table(rows []teamstats.Aggregate) []Row {
	ranked := Rank(rows)
	out := make([]Row, 0, len(ranked))
	for i, r := range ranked {
		out = append(out, Row{Position: i + 1, Aggregate: r})
	}
	return out
}
