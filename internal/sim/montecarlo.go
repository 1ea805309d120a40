package sim

import (
	"errors"
	"math"
	"sort"

	"github.com/xtding233/runchase/internal/match"
	"github.com/xtding233/runchase/internal/roster"
)

var ErrNilRoster = errors.New("sim: roster is required")

// Stats summarizes an integer metric across trials.
type Stats struct {
	Mean   float64
	Var    float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64
	// raw samples, for callers that want histograms
	Samples []int `json:"-"`
}

// Report aggregates the results of many independent matches.
type Report struct {
	Trials     int
	ChaseWins  int
	DefendWins int
	Ties       int

	ChaseWinRate  float64
	DefendWinRate float64
	TieRate       float64

	Runs      Stats // runs credited to the chasing side per match
	BallsUsed Stats // deliveries bowled per match
	Wickets   Stats // batters dismissed per match
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// population variance
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Samples: xs,
	}
}

// RunMonteCarlo plays trials matches in sequence from one seeded source and
// summarizes them. The same seed gives the same report.
func RunMonteCarlo(r *roster.Roster, trials int, seed uint64) (Report, error) {
	if r == nil {
		return Report{}, ErrNilRoster
	}
	if trials <= 0 {
		return Report{}, nil
	}
	rng := match.NewSeededRNG(seed)
	rep := Report{Trials: trials}
	runs := make([]int, trials)
	balls := make([]int, trials)
	wickets := make([]int, trials)

	for i := 0; i < trials; i++ {
		s := Run(r, rng, nil)
		res, _ := s.Result()
		switch res.Kind {
		case match.ChaseWon:
			rep.ChaseWins++
		case match.DefendWon:
			rep.DefendWins++
		case match.Tie:
			rep.Ties++
		}
		for _, v := range s.Scores() {
			runs[i] += v
		}
		balls[i] = match.Deliveries - s.BallsLeft()
		wickets[i] = match.SquadSize - len(s.BattersRemaining())
	}

	n := float64(trials)
	rep.ChaseWinRate = float64(rep.ChaseWins) / n
	rep.DefendWinRate = float64(rep.DefendWins) / n
	rep.TieRate = float64(rep.Ties) / n
	rep.Runs = calcStats(runs)
	rep.BallsUsed = calcStats(balls)
	rep.Wickets = calcStats(wickets)
	return rep, nil
}
