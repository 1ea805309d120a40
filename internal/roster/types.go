// types.go
package roster

import "github.com/xtding233/runchase/internal/match"

// RawRoster is a roster file as loaded from YAML.
type RawRoster struct {
	Version   string      `yaml:"version"`
	Chasing   string      `yaml:"chasing,omitempty"`
	Defending string      `yaml:"defending,omitempty"`
	Batters   []RawBatter `yaml:"batters"`
	Notes     string      `yaml:"notes,omitempty"`
}

// RawBatter holds one batter's probabilities in canonical order
// [0, 1, 2, 3, 4, 5, 6, out].
type RawBatter struct {
	Name  string    `yaml:"name"`
	Probs []float64 `yaml:"probs"`
}

// Batter is a validated squad member.
type Batter struct {
	Name    string
	Profile match.Profile
}

// Roster is the validated squad for one chase, in batting order.
type Roster struct {
	Version   string
	Chasing   string // team batting second
	Defending string // team that set the target
	Batters   []Batter
}

// Batter returns the squad member at index i. An index outside the squad is a
// programming error.
func (r *Roster) Batter(i int) Batter {
	if i < 0 || i >= len(r.Batters) {
		panic("roster: unknown batter index")
	}
	return r.Batters[i]
}

// Profile returns batter i's outcome profile.
func (r *Roster) Profile(i int) match.Profile { return r.Batter(i).Profile }
