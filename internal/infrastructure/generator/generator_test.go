package generator

import (
	"reflect"
	"testing"

	"github.com/riskibarqy/afcon-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/player"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/team"
)

func TestSeed_StableAndVersioned(t *testing.T) {
	t.Parallel()

	if Seed(1, "squad", "Morocco") != Seed(1, "squad", "Morocco") {
		t.Fatalf("expected identical seeds for identical input")
	}
	if Seed(1, "squad", "Morocco") == Seed(2, "squad", "Morocco") {
		t.Fatalf("expected seed to change with version")
	}
	if Seed(1, "squad", "Mali") == Seed(1, "squad", "Morocco") {
		t.Fatalf("expected seed to change with name")
	}
	if Seed(1, "ab", "c") == Seed(1, "a", "bc") {
		t.Fatalf("expected part boundaries to matter")
	}
}

func TestTeams(t *testing.T) {
	t.Parallel()

	teams := New(1).Teams()
	if len(teams) != 24 {
		t.Fatalf("expected 24 teams, got %d", len(teams))
	}

	groups := team.ByGroup(teams)
	for _, label := range team.Groups {
		if len(groups[label]) != 4 {
			t.Fatalf("expected 4 teams in %s, got %d", label, len(groups[label]))
		}
	}

	morocco, ok := team.Find(teams, "Morocco")
	if !ok {
		t.Fatalf("expected Morocco in team list")
	}
	if morocco.Group != "Group A" || morocco.SquadValue != 487_200_000 {
		t.Fatalf("unexpected Morocco row: %+v", morocco)
	}
	if morocco.URL != BaseURL+"/team/morocco" {
		t.Fatalf("unexpected Morocco url: %s", morocco.URL)
	}
	for _, item := range teams {
		if err := item.Validate(); err != nil {
			t.Fatalf("invalid team %s: %v", item.Name, err)
		}
	}
}

func TestSquad_TemplateAndRanges(t *testing.T) {
	t.Parallel()

	gen := New(1)
	for _, name := range []string{"Morocco", "Egypt", "Zambia", "Côte d'Ivoire"} {
		squad := gen.Squad(name)
		if len(squad) != player.SquadSize {
			t.Fatalf("%s: expected %d players, got %d", name, player.SquadSize, len(squad))
		}

		counts := player.CountByPosition(squad)
		for _, slot := range player.SquadTemplate {
			if counts[slot.Position] != slot.Count {
				t.Fatalf("%s: expected %d %s, got %d", name, slot.Count, slot.Position, counts[slot.Position])
			}
		}

		seen := make(map[string]struct{}, len(squad))
		for i, p := range squad {
			if err := p.Validate(); err != nil {
				t.Fatalf("%s: invalid player: %v", name, err)
			}
			if p.Number != i+1 {
				t.Fatalf("%s: expected shirt %d, got %d", name, i+1, p.Number)
			}
			if p.Age < 19 || p.Age > 35 {
				t.Fatalf("%s: age out of range: %d", name, p.Age)
			}
			lo, hi := outfieldMinValue, outfieldMaxValue
			if p.Position == player.PositionGoalkeeper {
				lo, hi = goalkeeperMinValue, goalkeeperMaxValue
			}
			if p.MarketValue < lo || p.MarketValue > hi {
				t.Fatalf("%s: value out of range for %s: %d", name, p.Position, p.MarketValue)
			}
			if p.Nationality != name {
				t.Fatalf("%s: unexpected nationality %s", name, p.Nationality)
			}
			if _, dup := seen[p.Name]; dup {
				t.Fatalf("%s: duplicate player name %s", name, p.Name)
			}
			seen[p.Name] = struct{}{}
		}
	}
}

func TestSquad_Deterministic(t *testing.T) {
	t.Parallel()

	first := New(1).Squad("Senegal")
	second := New(1).Squad("Senegal")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical squads for identical seed version")
	}

	other := New(2).Squad("Senegal")
	if reflect.DeepEqual(first, other) {
		t.Fatalf("expected a different squad for another seed version")
	}
}

func TestPlayerNames_ExtendsShortBank(t *testing.T) {
	t.Parallel()

	names := playerNames(newRand(Seed(1, "names")), "Egypt", 60)
	if len(names) != 60 {
		t.Fatalf("expected 60 names, got %d", len(names))
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			t.Fatalf("duplicate synthesized name %s", n)
		}
		seen[n] = struct{}{}
	}
}

func TestStatistics_Caps(t *testing.T) {
	t.Parallel()

	gen := New(1)
	teams := gen.Teams()
	squads := make(map[string][]player.Player, len(teams))
	for _, item := range teams {
		squads[item.Name] = gen.Squad(item.Name)
	}

	stats := gen.Statistics(teams, squads)
	if len(stats) != len(teams)*player.SquadSize {
		t.Fatalf("expected one row per player, got %d", len(stats))
	}

	for _, s := range stats {
		caps := playerstats.CapsFor(s.Position)
		if s.GamesPlayed < 0 || s.GamesPlayed > playerstats.MaxGames {
			t.Fatalf("games out of range: %+v", s)
		}
		if s.MinutesPlayed < 30*s.GamesPlayed || s.MinutesPlayed > 90*s.GamesPlayed {
			t.Fatalf("minutes out of range: %+v", s)
		}
		if s.Goals > min(s.GamesPlayed, caps.Goals) || s.Assists > min(s.GamesPlayed, caps.Assists) {
			t.Fatalf("goal or assist cap exceeded: %+v", s)
		}
		if s.Position == player.PositionGoalkeeper && (s.Goals != 0 || s.Assists != 0) {
			t.Fatalf("goalkeeper scored: %+v", s)
		}
		if s.YellowCards > min(s.GamesPlayed, playerstats.MaxYellowCards) {
			t.Fatalf("yellow cards out of range: %+v", s)
		}
		if s.RedCards > 0 && s.YellowCards <= 2 {
			t.Fatalf("red card without three yellows: %+v", s)
		}
	}

	if !reflect.DeepEqual(stats, gen.Statistics(teams, squads)) {
		t.Fatalf("expected statistics to be deterministic")
	}
}

func TestMatches_Calendar(t *testing.T) {
	t.Parallel()

	matches := New(1).Matches(New(1).Teams())
	if len(matches) != 45 {
		t.Fatalf("expected 45 matches, got %d", len(matches))
	}

	pairs := make(map[string]map[[2]string]int)
	for i, m := range matches {
		if m.ID != i+1 {
			t.Fatalf("expected sequential ids, got %d at %d", m.ID, i)
		}
		if m.Status != fixture.StatusScheduled || m.HomeScore != nil || m.AwayScore != nil {
			t.Fatalf("expected unplayed match: %+v", m)
		}
		if m.Phase != fixture.PhaseGroupStage {
			if !m.HasPlaceholder() || m.Group != nil {
				t.Fatalf("expected TBD knockout match: %+v", m)
			}
			continue
		}
		group := m.GroupLabel()
		if pairs[group] == nil {
			pairs[group] = make(map[[2]string]int)
		}
		key := [2]string{m.HomeTeam, m.AwayTeam}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		pairs[group][key]++
	}

	if len(pairs) != 6 {
		t.Fatalf("expected 6 groups, got %d", len(pairs))
	}
	for group, set := range pairs {
		if len(set) != 6 {
			t.Fatalf("%s: expected 6 distinct pairings, got %d", group, len(set))
		}
		for pair, n := range set {
			if n != 1 {
				t.Fatalf("%s: pair %v played %d times", group, pair, n)
			}
		}
	}

	first := matches[0]
	if first.GroupLabel() != "Group A" || first.HomeTeam != "Morocco" || first.AwayTeam != "Mali" {
		t.Fatalf("unexpected opening match: %+v", first)
	}
	// 'A' is 65, 65 mod 3 = 2 picks the third date of matchday one.
	if first.Date != "2025-12-23" {
		t.Fatalf("unexpected opening date: %s", first.Date)
	}
	if matches[44].Phase != fixture.PhaseFinal || matches[44].Date != "2026-01-18" {
		t.Fatalf("unexpected final: %+v", matches[44])
	}
}

func TestMatchDetails(t *testing.T) {
	t.Parallel()

	gen := New(1)
	home, away := gen.Squad("Morocco"), gen.Squad("Mali")
	hs, as := 2, 1
	group := "Group A"
	m := fixture.Match{
		ID: 1, Phase: fixture.PhaseGroupStage, Group: &group, HomeTeam: "Morocco", AwayTeam: "Mali",
		HomeScore: &hs, AwayScore: &as, Status: fixture.StatusFinished,
	}

	details := gen.MatchDetails(m, home, away)
	if len(details.HomeLineup) != fixture.LineupSize || len(details.AwayLineup) != fixture.LineupSize {
		t.Fatalf("expected 11-man lineups, got %d/%d", len(details.HomeLineup), len(details.AwayLineup))
	}
	if len(details.Scorers) != 3 {
		t.Fatalf("expected 3 scorers, got %d", len(details.Scorers))
	}
	for i := 1; i < len(details.Scorers); i++ {
		if details.Scorers[i-1].Minute > details.Scorers[i].Minute {
			t.Fatalf("expected scorers ordered by minute")
		}
	}
	if !reflect.DeepEqual(details, gen.MatchDetails(m, home, away)) {
		t.Fatalf("expected match details to be deterministic")
	}

	m.HomeScore, m.AwayScore = nil, nil
	if got := gen.MatchDetails(m, home, away); len(got.Scorers) != 0 {
		t.Fatalf("expected no scorers without a score, got %d", len(got.Scorers))
	}

	tbd := fixture.Match{ID: 40, Phase: fixture.PhaseFinal, HomeTeam: fixture.Placeholder, AwayTeam: fixture.Placeholder}
	if got := gen.MatchDetails(tbd, nil, nil); len(got.HomeLineup) != 0 || len(got.AwayLineup) != 0 {
		t.Fatalf("expected empty lineups for unresolved sides")
	}
}
