package match

import (
	"errors"
	"fmt"
	"math"
)

// ProbTolerance is how far a profile's probabilities may sum away from 1.
const ProbTolerance = 1e-12

var (
	ErrProfileLength   = errors.New("profile must have exactly 8 probabilities")
	ErrProfileNegative = errors.New("profile probabilities must be finite and >= 0")
	ErrProfileSum      = errors.New("profile probabilities must sum to 1")
)

// Profile is a batter's outcome distribution in canonical order
// [0, 1, 2, 3, 4, 5, 6, out]. It is immutable once built.
type Profile struct {
	probs [outcomeCount]float64
	// cumulative form, reused for every delivery
	bins [outcomeCount]float64
}

// NewProfile validates probs and precomputes its cumulative form.
func NewProfile(probs []float64) (Profile, error) {
	if err := ValidateProbs(probs); err != nil {
		return Profile{}, err
	}
	var p Profile
	copy(p.probs[:], probs)
	p.bins = toBins(p.probs)
	return p, nil
}

// MustProfile is NewProfile for built-in data; it panics on invalid input.
func MustProfile(probs []float64) Profile {
	p, err := NewProfile(probs)
	if err != nil {
		panic(err)
	}
	return p
}

// ValidateProbs checks length, sign and total of a probability vector.
func ValidateProbs(probs []float64) error {
	if len(probs) != outcomeCount {
		return fmt.Errorf("%w: got %d", ErrProfileLength, len(probs))
	}
	var total float64
	for i, p := range probs {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return fmt.Errorf("%w: probs[%d]=%v", ErrProfileNegative, i, p)
		}
		total += p
	}
	if math.Abs(total-1) > ProbTolerance {
		return fmt.Errorf("%w: total %v", ErrProfileSum, total)
	}
	return nil
}

// toBins returns the prefix sums of probs. Every bin from the last non-zero
// probability onward is pinned to exactly 1 so a draw in [0, 1) always lands
// in a live bin.
func toBins(probs [outcomeCount]float64) [outcomeCount]float64 {
	var bins [outcomeCount]float64
	var acc float64
	last := 0
	for i, p := range probs {
		acc += p
		bins[i] = acc
		if p > 0 {
			last = i
		}
	}
	for i := last; i < outcomeCount; i++ {
		bins[i] = 1
	}
	return bins
}

// Probability returns the probability assigned to o.
func (p Profile) Probability(o Outcome) float64 {
	if o.IsOut() {
		return p.probs[outcomeCount-1]
	}
	return p.probs[o.RunValue()]
}

// Probabilities returns a copy of the canonical probability vector.
func (p Profile) Probabilities() []float64 {
	out := make([]float64, outcomeCount)
	copy(out, p.probs[:])
	return out
}

// Cumulative returns a copy of the precomputed cumulative form.
func (p Profile) Cumulative() []float64 {
	out := make([]float64, outcomeCount)
	copy(out, p.bins[:])
	return out
}
