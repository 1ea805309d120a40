package roster

const (
	DefaultChasing   = "Bangalore"
	DefaultDefending = "Chennai"
)

// DefaultRaw is the built-in squad.
func DefaultRaw() RawRoster {
	return RawRoster{
		Version:   "1",
		Chasing:   DefaultChasing,
		Defending: DefaultDefending,
		Batters: []RawBatter{
			{Name: "Kirat Boli", Probs: []float64{0.05, 0.3, 0.25, 0.1, 0.15, 0.01, 0.09, 0.05}},
			{Name: "N.S Nodhi", Probs: []float64{0.1, 0.4, 0.2, 0.05, 0.1, 0.01, 0.04, 0.1}},
			{Name: "R Rumrah", Probs: []float64{0.2, 0.3, 0.15, 0.05, 0.05, 0.01, 0.04, 0.2}},
			{Name: "Shashi Henra", Probs: []float64{0.3, 0.25, 0.05, 0.0, 0.05, 0.01, 0.04, 0.3}},
		},
	}
}

// Default returns the built-in roster.
func Default() *Roster {
	r, err := Build(DefaultRaw())
	if err != nil {
		panic(err)
	}
	return r
}

