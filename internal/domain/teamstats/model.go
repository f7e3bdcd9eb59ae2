package teamstats

// Aggregate is the per-team summary row derived from teams, squads and finished matches.
type Aggregate struct {
	TeamName       string  `json:"team_name"`
	Group          string  `json:"group"`
	SquadValue     float64 `json:"squad_value"`
	MatchesPlayed  int     `json:"matches_played"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	GoalsScored    int     `json:"goals_scored"`
	GoalsConceded  int     `json:"goals_conceded"`
	GoalDifference int     `json:"goal_difference"`
	Points         int     `json:"points"`
	AvgAge         float64 `json:"avg_age"`
	TotalPlayers   int     `json:"total_players"`
}

// Record applies one result to the row.
func (a *Aggregate) Record(scored, conceded int) {
	a.MatchesPlayed++
	a.GoalsScored += scored
	a.GoalsConceded += conceded
	a.GoalDifference = a.GoalsScored - a.GoalsConceded
	switch {
	case scored > conceded:
		a.Wins++
		a.Points += 3
	case scored == conceded:
		a.Draws++
		a.Points++
	default:
		a.Losses++
	}
}

func FilterGroup(items []Aggregate, group string) []Aggregate {
	out := make([]Aggregate, 0, 4)
	for _, item := range items {
		if item.Group == group {
			out = append(out, item)
		}
	}
	return out
}

func Find(items []Aggregate, team string) (Aggregate, bool) {
	for _, item := range items {
		if item.TeamName == team {
			return item, true
		}
	}
	return Aggregate{}, false
}

// GroupSummary condenses the rows of one group.
type GroupSummary struct {
	Group       string  `json:"group"`
	Teams       int     `json:"teams"`
	TotalValue  float64 `json:"total_value"`
	MeanValue   float64 `json:"mean_value"`
	AvgAge      float64 `json:"avg_age"`
	GoalsScored int     `json:"goals_scored"`
}

// Summarize totals value and goals and averages value and age across rows.
func Summarize(group string, rows []Aggregate) GroupSummary {
	out := GroupSummary{Group: group, Teams: len(rows)}
	if len(rows) == 0 {
		return out
	}
	var ages float64
	for _, r := range rows {
		out.TotalValue += r.SquadValue
		out.GoalsScored += r.GoalsScored
		ages += r.AvgAge
	}
	out.MeanValue = out.TotalValue / float64(len(rows))
	out.AvgAge = ages / float64(len(rows))
	return out
}
