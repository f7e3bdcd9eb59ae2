package generator

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/riskibarqy/afcon-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/player"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/team"
)

const (
	minAge = 19
	maxAge = 35

	goalkeeperMinValue int64 = 300_000
	goalkeeperMaxValue int64 = 40_000_000
	outfieldMinValue   int64 = 500_000
	outfieldMaxValue   int64 = 80_000_000

	nameBasePool = 10
)

// Generator builds the mock tournament datasets. Output is a pure function of the seed version
// and its arguments.
type Generator struct {
	seedVersion int
}

func New(seedVersion int) *Generator {
	if seedVersion <= 0 {
		seedVersion = 1
	}
	return &Generator{seedVersion: seedVersion}
}

func (g *Generator) SeedVersion() int {
	return g.seedVersion
}

// Teams returns the 24 participants in draw order with their parsed squad valuations.
func (g *Generator) Teams() []team.Team {
	out := make([]team.Team, 0, 24)
	for _, grp := range tournamentGroups {
		for _, entry := range grp.Teams {
			out = append(out, team.Team{
				Name:       entry.Name,
				Group:      grp.Label,
				URL:        teamURL(entry.Name),
				SquadValue: ParseMarketValue(entry.Value),
			})
		}
	}
	return out
}

func teamURL(name string) string {
	return BaseURL + "/team/" + strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// Squad builds the 23-man squad of a team following player.SquadTemplate.
func (g *Generator) Squad(teamName string) []player.Player {
	r := newRand(Seed(g.seedVersion, "squad", teamName))
	names := playerNames(r, teamName, player.SquadSize)

	out := make([]player.Player, 0, player.SquadSize)
	idx := 0
	for _, slot := range player.SquadTemplate {
		for i := 0; i < slot.Count && idx < len(names); i++ {
			out = append(out, player.Player{
				Name:        names[idx],
				Number:      idx + 1,
				Position:    slot.Position,
				Age:         between(r, minAge, maxAge),
				Club:        clubs[r.IntN(len(clubs))],
				MarketValue: marketValue(r, slot.Position),
				Nationality: teamName,
			})
			idx++
		}
	}
	return out
}

func marketValue(r *rand.Rand, pos player.Position) int64 {
	if pos == player.PositionGoalkeeper {
		return between64(r, goalkeeperMinValue, goalkeeperMaxValue)
	}
	return between64(r, outfieldMinValue, outfieldMaxValue)
}

// playerNames draws count unique names from the nation's bank, inventing variants of the first
// entries when the bank is too small.
func playerNames(r *rand.Rand, teamName string, count int) []string {
	bank, ok := nameBanks[teamName]
	if !ok {
		bank = nameBanks[defaultNameBank]
	}
	names := slices.Clone(bank)
	seen := make(map[string]struct{}, len(names)+count)
	for _, n := range names {
		seen[n] = struct{}{}
	}

	for len(names) < count {
		base := names[r.IntN(min(nameBasePool, len(names)))]
		var candidate string
		if first, _, found := strings.Cut(base, " "); found {
			candidate = first + " " + nameVariantSuffixes[r.IntN(len(nameVariantSuffixes))]
		} else {
			candidate = fmt.Sprintf("%s %d", base, between(r, 1, 99))
		}
		if _, dup := seen[candidate]; dup {
			candidate = fmt.Sprintf("%s %d", candidate, len(names)+1)
		}
		seen[candidate] = struct{}{}
		names = append(names, candidate)
	}

	r.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	return names[:count]
}

// Statistics draws tournament counters for every player, walking teams in order and squads in
// roster order.
func (g *Generator) Statistics(teams []team.Team, squads map[string][]player.Player) []playerstats.Statistic {
	out := make([]playerstats.Statistic, 0, len(teams)*player.SquadSize)
	for _, t := range teams {
		r := newRand(Seed(g.seedVersion, "stats", t.Name))
		for _, p := range squads[t.Name] {
			out = append(out, statistic(r, t.Name, p))
		}
	}
	return out
}

func statistic(r *rand.Rand, teamName string, p player.Player) playerstats.Statistic {
	games := between(r, 0, playerstats.MaxGames)
	s := playerstats.Statistic{
		PlayerName:    p.Name,
		Team:          teamName,
		Position:      p.Position,
		GamesPlayed:   games,
		MinutesPlayed: games * between(r, 30, 90),
	}

	if games > 0 && p.Position != player.PositionGoalkeeper {
		caps := playerstats.CapsFor(p.Position)
		s.Goals = between(r, 0, min(games, caps.Goals))
		s.Assists = between(r, 0, min(games, caps.Assists))
	}

	s.YellowCards = between(r, 0, min(games, playerstats.MaxYellowCards))
	if s.YellowCards > 2 {
		s.RedCards = between(r, 0, 1)
	}
	return s
}

// Matches lays out the full calendar: a round robin inside each group followed by the knockout
// skeleton. Every match is Scheduled with no score.
func (g *Generator) Matches(teams []team.Team) []fixture.Match {
	byGroup := team.ByGroup(teams)
	labels := make([]string, 0, len(byGroup))
	for label := range byGroup {
		labels = append(labels, label)
	}
	slices.Sort(labels)

	out := make([]fixture.Match, 0, 45)
	id := 1
	for _, label := range labels {
		members := byGroup[label]
		tiebreak := int(team.GroupLetter(label)) % 3
		matchday := 1
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				group := label
				out = append(out, fixture.Match{
					ID:       id,
					Phase:    fixture.PhaseGroupStage,
					Group:    &group,
					Date:     matchdayDates[matchday][tiebreak],
					HomeTeam: members[i].Name,
					AwayTeam: members[j].Name,
					Status:   fixture.StatusScheduled,
				})
				id++
				if id%3 == 0 {
					matchday = matchday%matchdays + 1
				}
			}
		}
	}

	for _, round := range knockoutSchedule {
		for _, date := range round.Dates {
			out = append(out, fixture.Match{
				ID:       id,
				Phase:    round.Phase,
				Date:     date,
				HomeTeam: fixture.Placeholder,
				AwayTeam: fixture.Placeholder,
				Status:   fixture.StatusScheduled,
			})
			id++
		}
	}
	return out
}

// MatchDetails expands a match with lineups and, when the score is known, goal scorers.
// Squads may be empty for unresolved sides.
func (g *Generator) MatchDetails(m fixture.Match, home, away []player.Player) fixture.Details {
	r := newRand(Seed(g.seedVersion, "match", fmt.Sprint(m.ID)))
	d := fixture.Details{
		Match:      m,
		HomeLineup: lineup(r, home),
		AwayLineup: lineup(r, away),
		Scorers:    []fixture.Scorer{},
	}

	if m.HomeScore != nil && m.AwayScore != nil {
		d.Scorers = append(d.Scorers, scorers(r, m.HomeTeam, d.HomeLineup, *m.HomeScore)...)
		d.Scorers = append(d.Scorers, scorers(r, m.AwayTeam, d.AwayLineup, *m.AwayScore)...)
		slices.SortStableFunc(d.Scorers, func(a, b fixture.Scorer) int { return a.Minute - b.Minute })
	}
	return d
}

func lineup(r *rand.Rand, squad []player.Player) []string {
	out := make([]string, 0, fixture.LineupSize)
	for _, i := range r.Perm(len(squad)) {
		if len(out) == fixture.LineupSize {
			break
		}
		out = append(out, squad[i].Name)
	}
	return out
}

func scorers(r *rand.Rand, teamName string, names []string, goals int) []fixture.Scorer {
	if len(names) == 0 || goals <= 0 {
		return nil
	}
	out := make([]fixture.Scorer, 0, goals)
	for range goals {
		out = append(out, fixture.Scorer{
			Team:   teamName,
			Player: names[r.IntN(len(names))],
			Minute: between(r, 1, 90),
		})
	}
	return out
}
