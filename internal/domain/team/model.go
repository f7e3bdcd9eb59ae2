package team

import (
	"fmt"
	"strings"
)

// Groups lists the six group labels of the tournament in draw order.
var Groups = []string{"Group A", "Group B", "Group C", "Group D", "Group E", "Group F"}

// Team is a national side taking part in the tournament.
type Team struct {
	Name       string  `json:"team_name"`
	Group      string  `json:"group"`
	URL        string  `json:"team_url"`
	SquadValue float64 `json:"squad_value"`
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if !IsGroup(t.Group) {
		return fmt.Errorf("invalid team group: %q", t.Group)
	}
	if t.SquadValue < 0 {
		return fmt.Errorf("team squad value must not be negative")
	}

	return nil
}

func IsGroup(label string) bool {
	for _, g := range Groups {
		if g == label {
			return true
		}
	}
	return false
}

// GroupLetter returns the trailing letter of a group label ("Group C" -> 'C').
func GroupLetter(label string) byte {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0
	}
	return label[len(label)-1]
}

// ByGroup buckets teams per group, preserving input order inside each group.
func ByGroup(teams []Team) map[string][]Team {
	out := make(map[string][]Team, len(Groups))
	for _, t := range teams {
		out[t.Group] = append(out[t.Group], t)
	}
	return out
}

func Find(teams []Team, name string) (Team, bool) {
	for _, t := range teams {
		if t.Name == name {
			return t, true
		}
	}
	return Team{}, false
}
