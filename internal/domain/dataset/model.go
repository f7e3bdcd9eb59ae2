package dataset

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
)

// SchemaVersion tags the record shapes written by this build. Bump it whenever a record
// type in the domain packages gains, loses or renames a field.
const SchemaVersion = 1

const (
	NameTeams       = "teams"
	NamePlayerStats = "player_stats"
	NameMatches     = "matches"
	NameTeamStats   = "team_stats"
	// NameSquads addresses every squad dataset at once.
	NameSquads  = "squads"
	SquadPrefix = "squad_"
)

var (
	// ErrSchemaMismatch marks a stored snapshot whose envelope does not match the requested key.
	ErrSchemaMismatch = crerr.New("dataset schema mismatch")
	// ErrCorrupt marks a stored snapshot that cannot be decoded.
	ErrCorrupt = crerr.New("dataset snapshot corrupt")
)

// IsSchemaMismatch reports whether err, or any error it wraps, carries ErrSchemaMismatch.
func IsSchemaMismatch(err error) bool {
	return crerr.Is(err, ErrSchemaMismatch)
}

// IsCorrupt reports whether err, or any error it wraps, carries ErrCorrupt.
func IsCorrupt(err error) bool {
	return crerr.Is(err, ErrCorrupt)
}

// Key identifies one stored dataset: its name plus the schema and generator seed versions
// the records were produced with.
type Key struct {
	Name          string
	SchemaVersion int
	SeedVersion   int
}

func (k Key) String() string {
	return fmt.Sprintf("%s@s%d.g%d", k.Name, k.SchemaVersion, k.SeedVersion)
}

// ValidateName checks the name alone, for operations that address a snapshot whose versions
// are unknown.
func (k Key) ValidateName() error {
	if strings.TrimSpace(k.Name) == "" {
		return fmt.Errorf("dataset name is required")
	}
	if !validName.MatchString(k.Name) {
		return fmt.Errorf("invalid dataset name %q", k.Name)
	}
	return nil
}

func (k Key) Validate() error {
	if err := k.ValidateName(); err != nil {
		return err
	}
	if k.SchemaVersion <= 0 || k.SeedVersion <= 0 {
		return fmt.Errorf("dataset versions must be > 0")
	}
	return nil
}

var validName = regexp.MustCompile(`^[a-z0-9_\-]+$`)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// SquadName derives the dataset name of a team's squad ("Côte d'Ivoire" -> "squad_c_te_d_ivoire").
func SquadName(team string) string {
	slug := nonSlug.ReplaceAllString(strings.ToLower(strings.TrimSpace(team)), "_")
	return SquadPrefix + strings.Trim(slug, "_")
}

// Envelope wraps the records of a stored dataset.
type Envelope struct {
	Dataset       string    `json:"dataset"`
	SchemaVersion int       `json:"schema_version"`
	SeedVersion   int       `json:"seed_version"`
	GeneratedAt   time.Time `json:"generated_at"`
	Rows          int       `json:"rows"`
}

// Matches reports whether the envelope was written for key.
func (e Envelope) Matches(key Key) bool {
	return e.Dataset == key.Name && e.SchemaVersion == key.SchemaVersion && e.SeedVersion == key.SeedVersion
}

// Info describes a stored dataset without its records.
type Info struct {
	Key         Key
	Rows        int
	GeneratedAt time.Time
	SizeBytes   int64
}
