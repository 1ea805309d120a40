package roster

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/xtding233/runchase/internal/match"
)

var ErrInvalidRoster = errors.New("roster validation failed")

// ValidateRaw checks a RawRoster and reports every problem at once.
func ValidateRaw(raw RawRoster) error {
	var errs []string

	if len(raw.Batters) != match.SquadSize {
		errs = append(errs, fmt.Sprintf("batters must list exactly %d entries, got %d", match.SquadSize, len(raw.Batters)))
	}
	if raw.Chasing != "" && raw.Chasing == raw.Defending {
		errs = append(errs, "chasing and defending must be different teams")
	}

	seen := make(map[string]int, len(raw.Batters))
	for i, b := range raw.Batters {
		name := strings.TrimSpace(b.Name)
		if name == "" {
			errs = append(errs, fmt.Sprintf("batters[%d].name is required", i))
		} else if j, dup := seen[name]; dup {
			errs = append(errs, fmt.Sprintf("batters[%d].name %q duplicates batters[%d]", i, name, j))
		} else {
			seen[name] = i
		}

		if len(b.Probs) != 8 {
			errs = append(errs, fmt.Sprintf("batters[%d].probs must have 8 entries [0,1,2,3,4,5,6,out], got %d", i, len(b.Probs)))
			continue
		}
		var total float64
		for k, p := range b.Probs {
			if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
				errs = append(errs, fmt.Sprintf("batters[%d].probs[%d] must be finite and >= 0", i, k))
			}
			total += p
		}
		if math.Abs(total-1) > match.ProbTolerance {
			errs = append(errs, fmt.Sprintf("batters[%d].probs must sum to 1, got %v", i, total))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRoster, strings.Join(errs, "; "))
	}
	return nil
}

// Build validates raw and constructs the roster. Empty team names fall back
// to the defaults.
func Build(raw RawRoster) (*Roster, error) {
	if err := ValidateRaw(raw); err != nil {
		return nil, err
	}
	r := &Roster{
		Version:   raw.Version,
		Chasing:   raw.Chasing,
		Defending: raw.Defending,
		Batters:   make([]Batter, len(raw.Batters)),
	}
	if r.Chasing == "" {
		r.Chasing = DefaultChasing
	}
	if r.Defending == "" {
		r.Defending = DefaultDefending
	}
	for i, b := range raw.Batters {
		p, err := match.NewProfile(b.Probs)
		if err != nil {
			return nil, fmt.Errorf("batter %q: %w", b.Name, err)
		}
		r.Batters[i] = Batter{Name: strings.TrimSpace(b.Name), Profile: p}
	}
	return r, nil
}
