package roster

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xtding233/runchase/internal/match"
)

func writeRoster(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultRoster(t *testing.T) {
	r := Default()
	if len(r.Batters) != match.SquadSize {
		t.Fatalf("got %d batters", len(r.Batters))
	}
	if r.Chasing != "Bangalore" || r.Defending != "Chennai" {
		t.Fatalf("teams = %q vs %q", r.Chasing, r.Defending)
	}
	if r.Batter(0).Name != "Kirat Boli" || r.Batter(3).Name != "Shashi Henra" {
		t.Fatalf("unexpected batting order: %+v", r.Batters)
	}
	if got := r.Profile(3).Probability(match.Runs(3)); got != 0 {
		t.Fatalf("Shashi Henra p(3)=%v want 0", got)
	}
}

func TestLoadOverlaysDefault(t *testing.T) {
	path := writeRoster(t, `
version: "2"
chasing: Mumbai
batters:
  - name: Opener
    probs: [0, 0, 0, 0, 1, 0, 0, 0]
  - name: ""
`)
	r, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if r.Version != "2" || r.Chasing != "Mumbai" || r.Defending != "Chennai" {
		t.Fatalf("roster=%+v", r)
	}
	if r.Batter(0).Name != "Opener" || r.Profile(0).Probability(match.Runs(4)) != 1 {
		t.Fatalf("batter 0 not overridden: %+v", r.Batter(0))
	}
	if r.Batter(1).Name != "N.S Nodhi" {
		t.Fatalf("batter 1 should keep default name, got %q", r.Batter(1).Name)
	}
}

func TestLoadRejectsInvalidProfiles(t *testing.T) {
	path := writeRoster(t, `
batters:
  - name: Short
    probs: [0.5, 0.5]
  - name: Heavy
    probs: [0.5, 0.5, 0.5, 0, 0, 0, 0, 0]
  - name: Short
`)
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidRoster) {
		t.Fatalf("err=%v want ErrInvalidRoster", err)
	}
	for _, want := range []string{
		"batters[0].probs must have 8 entries",
		"batters[1].probs must sum to 1",
		`batters[2].name "Short" duplicates batters[0]`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("missing roster file must error")
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("batters: [")); err == nil {
		t.Fatalf("malformed yaml must error")
	}
}

func TestValidateRaw(t *testing.T) {
	cases := []struct {
		name string
		edit func(*RawRoster)
		want string
	}{
		{"too few batters", func(r *RawRoster) { r.Batters = r.Batters[:3] }, "exactly 4 entries, got 3"},
		{"same teams", func(r *RawRoster) { r.Defending = r.Chasing }, "different teams"},
		{"blank name", func(r *RawRoster) { r.Batters[2].Name = "  " }, "batters[2].name is required"},
		{"negative prob", func(r *RawRoster) { r.Batters[1].Probs = []float64{-0.1, 0.5, 0.6, 0, 0, 0, 0, 0} }, "batters[1].probs[0] must be finite"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := DefaultRaw()
			tc.edit(&raw)
			err := ValidateRaw(raw)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err=%v want substring %q", err, tc.want)
			}
		})
	}
	if err := ValidateRaw(DefaultRaw()); err != nil {
		t.Fatalf("default roster invalid: %v", err)
	}
}

func TestMergeDoesNotAlias(t *testing.T) {
	base := DefaultRaw()
	override := RawRoster{Batters: []RawBatter{{Probs: []float64{1, 0, 0, 0, 0, 0, 0, 0}}}}
	merged := Merge(base, override)
	override.Batters[0].Probs[0] = 0
	merged.Batters[1].Name = "changed"
	if merged.Batters[0].Probs[0] != 1 {
		t.Fatalf("merge aliased override probs")
	}
	if base.Batters[1].Name != "N.S Nodhi" {
		t.Fatalf("merge aliased base batters")
	}
}

func TestBatterPanicsOnUnknownIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Batter(4) should panic")
		}
	}()
	Default().Batter(4)
}
