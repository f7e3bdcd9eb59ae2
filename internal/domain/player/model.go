package player

import "fmt"

// Position is the squad role of a player.
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
)

// Slot is one line of the squad template.
type Slot struct {
	Position Position
	Count    int
}

// SquadTemplate is the fixed position distribution of every generated squad.
var SquadTemplate = []Slot{
	{Position: PositionGoalkeeper, Count: 3},
	{Position: PositionDefender, Count: 8},
	{Position: PositionMidfielder, Count: 8},
	{Position: PositionForward, Count: 4},
}

// SquadSize is the sum of SquadTemplate counts.
const SquadSize = 23

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

func ParsePosition(v string) (Position, bool) {
	p := Position(v)
	_, ok := AllPositions[p]
	return p, ok
}

// Player is a squad member of a national team.
type Player struct {
	Name        string   `json:"player_name"`
	Number      int      `json:"number"`
	Position    Position `json:"position"`
	Age         int      `json:"age"`
	Club        string   `json:"club"`
	MarketValue int64    `json:"market_value"`
	Nationality string   `json:"nationality"`
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Nationality == "" {
		return fmt.Errorf("player team is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.Number <= 0 {
		return fmt.Errorf("player shirt number must be greater than zero")
	}
	if p.MarketValue < 0 {
		return fmt.Errorf("player market value must not be negative")
	}

	return nil
}

// CountByPosition tallies a squad per position.
func CountByPosition(squad []Player) map[Position]int {
	out := make(map[Position]int, len(AllPositions))
	for _, p := range squad {
		out[p.Position]++
	}
	return out
}

// AverageAge returns the mean age of a squad, 0 for an empty one.
func AverageAge(squad []Player) float64 {
	if len(squad) == 0 {
		return 0
	}
	total := 0
	for _, p := range squad {
		total += p.Age
	}
	return float64(total) / float64(len(squad))
}

// TotalValue sums market values across a squad.
func TotalValue(squad []Player) int64 {
	var total int64
	for _, p := range squad {
		total += p.MarketValue
	}
	return total
}
