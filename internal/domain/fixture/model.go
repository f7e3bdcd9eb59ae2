package fixture

import (
	"strings"
	"time"
)

const (
	PhaseGroupStage    = "Group Stage"
	PhaseRoundOf16     = "Round of 16"
	PhaseQuarterFinals = "Quarter-finals"
	PhaseSemiFinals    = "Semi-finals"
	PhaseFinal         = "Final"
)

// KnockoutPhases lists single-elimination rounds in playing order.
var KnockoutPhases = []string{PhaseRoundOf16, PhaseQuarterFinals, PhaseSemiFinals, PhaseFinal}

const (
	StatusScheduled = "Scheduled"
	StatusFinished  = "Finished"
)

// Placeholder fills team slots of knockout matches whose participants are unresolved.
const Placeholder = "TBD"

// DateLayout is the calendar format used for match dates.
const DateLayout = "2006-01-02"

// Match is one fixture of the tournament calendar.
type Match struct {
	ID        int     `json:"match_id"`
	Phase     string  `json:"phase"`
	Group     *string `json:"group"`
	Date      string  `json:"date"`
	HomeTeam  string  `json:"team_home"`
	AwayTeam  string  `json:"team_away"`
	HomeScore *int    `json:"score_home"`
	AwayScore *int    `json:"score_away"`
	Status    string  `json:"status"`
}

func (m Match) GroupLabel() string {
	if m.Group == nil {
		return ""
	}
	return *m.Group
}

func (m Match) Day() (time.Time, error) {
	return time.Parse(DateLayout, m.Date)
}

func (m Match) IsKnockout() bool {
	return m.Phase != PhaseGroupStage
}

// HasPlaceholder reports whether either side is still undetermined.
func (m Match) HasPlaceholder() bool {
	return m.HomeTeam == Placeholder || m.AwayTeam == Placeholder
}

// IsFinished reports whether the match counts toward results: status Finished with both scores set.
func (m Match) IsFinished() bool {
	return strings.EqualFold(m.Status, StatusFinished) && m.HomeScore != nil && m.AwayScore != nil
}

func (m Match) Involves(team string) bool {
	return m.HomeTeam == team || m.AwayTeam == team
}

// GoalsFor returns goals scored and conceded by team in a finished match.
func (m Match) GoalsFor(team string) (scored, conceded int, ok bool) {
	if !m.IsFinished() {
		return 0, 0, false
	}
	switch team {
	case m.HomeTeam:
		return *m.HomeScore, *m.AwayScore, true
	case m.AwayTeam:
		return *m.AwayScore, *m.HomeScore, true
	default:
		return 0, 0, false
	}
}

// Points awards 3 for a win, 1 for a draw and 0 for a loss.
func Points(scored, conceded int) int {
	switch {
	case scored > conceded:
		return 3
	case scored == conceded:
		return 1
	default:
		return 0
	}
}

// Finished filters matches down to the ones that count toward results.
func Finished(items []Match) []Match {
	out := make([]Match, 0, len(items))
	for _, m := range items {
		if m.IsFinished() {
			out = append(out, m)
		}
	}
	return out
}

// Scorer is a goal event in a match report.
type Scorer struct {
	Team   string `json:"team"`
	Player string `json:"player"`
	Minute int    `json:"minute"`
}

// Details is the expanded view of one match: lineups and goal scorers.
type Details struct {
	Match      Match    `json:"match_info"`
	HomeLineup []string `json:"home_lineup"`
	AwayLineup []string `json:"away_lineup"`
	Scorers    []Scorer `json:"scorers"`
}

// LineupSize is the number of starters picked per side.
const LineupSize = 11
