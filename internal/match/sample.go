package match

// Sample draws one outcome for a batter with profile p.
// It picks the smallest index i with u <= cumulative[i], skipping zero-width
// bins, and falls back to the dismissal if none matches. A nil rng uses
// DefaultRNG.
func Sample(p Profile, rng RandomSource) Outcome {
	if rng == nil {
		rng = DefaultRNG()
	}
	return outcomeAt(pickIndex(p, rng.Float64()))
}

func pickIndex(p Profile, u float64) int {
	for i, c := range p.bins {
		if p.probs[i] > 0 && u <= c {
			return i
		}
	}
	return outcomeCount - 1
}
