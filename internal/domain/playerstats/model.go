package playerstats

import "github.com/riskibarqy/afcon-dashboard/internal/domain/player"

// Statistic holds tournament counters for one player.
type Statistic struct {
	PlayerName    string          `json:"player_name"`
	Team          string          `json:"team"`
	Position      player.Position `json:"position"`
	GamesPlayed   int             `json:"games_played"`
	MinutesPlayed int             `json:"minutes_played"`
	Goals         int             `json:"goals"`
	Assists       int             `json:"assists"`
	YellowCards   int             `json:"yellow_cards"`
	RedCards      int             `json:"red_cards"`
}

// Caps bounds goals and assists for a position, before the games-played cap.
type Caps struct {
	Goals   int
	Assists int
}

var capsByPosition = map[player.Position]Caps{
	player.PositionForward:    {Goals: 5, Assists: 3},
	player.PositionMidfielder: {Goals: 3, Assists: 4},
	player.PositionDefender:   {Goals: 2, Assists: 2},
	player.PositionGoalkeeper: {Goals: 0, Assists: 0},
}

func CapsFor(pos player.Position) Caps {
	return capsByPosition[pos]
}

// MaxYellowCards is the highest yellow-card count drawn for any player.
const MaxYellowCards = 3

// MaxGames is the most games a side can play in the tournament.
const MaxGames = 7

// Summary totals a set of statistics.
type Summary struct {
	Players       int
	Goals         int
	Assists       int
	MinutesPlayed int
	YellowCards   int
	RedCards      int
}

func Summarize(items []Statistic) Summary {
	out := Summary{Players: len(items)}
	for _, s := range items {
		out.Goals += s.Goals
		out.Assists += s.Assists
		out.MinutesPlayed += s.MinutesPlayed
		out.YellowCards += s.YellowCards
		out.RedCards += s.RedCards
	}
	return out
}
