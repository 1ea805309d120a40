package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a roster file, overlays it on the built-in squad and validates
// the result.
func Load(path string) (*Roster, error) {
	raw, err := readYAML(path)
	if err != nil {
		return nil, err
	}
	return Build(Merge(DefaultRaw(), raw))
}

// Parse decodes a YAML roster document.
func Parse(b []byte) (RawRoster, error) {
	var raw RawRoster
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return RawRoster{}, fmt.Errorf("parse roster: %w", err)
	}
	return raw, nil
}

func readYAML(path string) (RawRoster, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return RawRoster{}, fmt.Errorf("read roster: %w", err)
	}
	return Parse(b)
}

// Merge overlays b on a: non-empty scalars replace, and batters replace by
// position. A batter entry with no probs keeps a's probabilities.
func Merge(a, b RawRoster) RawRoster {
	out := a
	out.Batters = append([]RawBatter(nil), a.Batters...)

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Chasing != "" {
		out.Chasing = b.Chasing
	}
	if b.Defending != "" {
		out.Defending = b.Defending
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	for i, bb := range b.Batters {
		if i >= len(out.Batters) {
			out.Batters = append(out.Batters, RawBatter{Name: bb.Name, Probs: append([]float64(nil), bb.Probs...)})
			continue
		}
		if bb.Name != "" {
			out.Batters[i].Name = bb.Name
		}
		if len(bb.Probs) > 0 {
			out.Batters[i].Probs = append([]float64(nil), bb.Probs...)
		}
	}
	return out
}
