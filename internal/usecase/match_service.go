package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/afcon-dashboard/internal/domain/fixture"
)

// PhaseAll selects every phase in match listings.
const PhaseAll = "all"

// MatchStats summarizes finished matches. Available is false when none are finished, in
// which case every other field is zero.
type MatchStats struct {
	Available     bool    `json:"available"`
	Finished      int     `json:"finished"`
	GoalsPerMatch float64 `json:"goals_per_match"`
	HomeWins      int     `json:"home_wins"`
	HomeWinPct    float64 `json:"home_win_pct"`
	Draws         int     `json:"draws"`
	DrawPct       float64 `json:"draw_pct"`
}

// GroupFixtures is the group-stage calendar of one group, ordered by date.
type GroupFixtures struct {
	Group   string          `json:"group"`
	Matches []fixture.Match `json:"matches"`
}

type MatchService struct {
	tournament *TournamentService
}

func NewMatchService(tournament *TournamentService) *MatchService {
	return &MatchService{tournament: tournament}
}

// NormalizePhase maps "" and "all" to PhaseAll and matches known phases case-insensitively.
func NormalizePhase(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, PhaseAll) {
		return PhaseAll, true
	}
	for _, p := range AllPhases() {
		if strings.EqualFold(p, raw) {
			return p, true
		}
	}
	return "", false
}

// AllPhases lists every phase in playing order.
func AllPhases() []string {
	return append([]string{fixture.PhaseGroupStage}, fixture.KnockoutPhases...)
}

// List returns the calendar filtered by phase, in id order.
func (s *MatchService) List(ctx context.Context, phase string) ([]fixture.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	normalized, ok := NormalizePhase(phase)
	if !ok {
		return nil, fmt.Errorf("%w: phase=%s", ErrInvalidInput, phase)
	}
	matches, err := s.tournament.Matches(ctx)
	if err != nil {
		return nil, err
	}
	return filterPhase(matches, normalized), nil
}

func filterPhase(matches []fixture.Match, phase string) []fixture.Match {
	if phase == PhaseAll {
		return slices.Clone(matches)
	}
	out := make([]fixture.Match, 0, len(matches))
	for _, m := range matches {
		if m.Phase == phase {
			out = append(out, m)
		}
	}
	return out
}

// Phases lists the phases present in the calendar in playing order.
func (s *MatchService) Phases(ctx context.Context) ([]string, error) {
	matches, err := s.tournament.Matches(ctx)
	if err != nil {
		return nil, err
	}
	present := make(map[string]struct{}, 5)
	for _, m := range matches {
		present[m.Phase] = struct{}{}
	}
	out := make([]string, 0, len(present))
	for _, p := range AllPhases() {
		if _, ok := present[p]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MatchService) Get(ctx context.Context, matchID int) (fixture.Details, error) {
	return s.tournament.MatchDetails(ctx, matchID)
}

// ByGroup buckets group-stage matches per group label, sorted by label, each bucket sorted by
// date with id as tiebreak.
func ByGroup(matches []fixture.Match) []GroupFixtures {
	buckets := make(map[string][]fixture.Match)
	for _, m := range matches {
		if m.Phase != fixture.PhaseGroupStage || m.Group == nil {
			continue
		}
		buckets[*m.Group] = append(buckets[*m.Group], m)
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	slices.Sort(labels)

	out := make([]GroupFixtures, 0, len(labels))
	for _, label := range labels {
		items := buckets[label]
		slices.SortStableFunc(items, func(a, b fixture.Match) int {
			if c := cmp.Compare(a.Date, b.Date); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
		out = append(out, GroupFixtures{Group: label, Matches: items})
	}
	return out
}

// ComputeMatchStats only looks at finished matches; scheduled and placeholder fixtures never
// count.
func ComputeMatchStats(matches []fixture.Match) MatchStats {
	finished := fixture.Finished(matches)
	if len(finished) == 0 {
		return MatchStats{}
	}

	out := MatchStats{Available: true, Finished: len(finished)}
	goals := 0
	for _, m := range finished {
		home, away := *m.HomeScore, *m.AwayScore
		goals += home + away
		switch {
		case home > away:
			out.HomeWins++
		case home == away:
			out.Draws++
		}
	}
	n := float64(len(finished))
	out.GoalsPerMatch = float64(goals) / n
	out.HomeWinPct = 100 * float64(out.HomeWins) / n
	out.DrawPct = 100 * float64(out.Draws) / n
	return out
}

// Stats summarizes the finished matches of one phase.
func (s *MatchService) Stats(ctx context.Context, phase string) (MatchStats, error) {
	matches, err := s.List(ctx, phase)
	if err != nil {
		return MatchStats{}, err
	}
	return ComputeMatchStats(matches), nil
}
