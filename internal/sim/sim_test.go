package sim

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/xtding233/runchase/internal/match"
	"github.com/xtding233/runchase/internal/roster"
)

// fixedRoster returns a squad whose every batter always produces probs' only
// outcome.
func fixedRoster(t *testing.T, probs []float64) *roster.Roster {
	t.Helper()
	raw := roster.DefaultRaw()
	for i := range raw.Batters {
		raw.Batters[i].Probs = probs
	}
	r, err := roster.Build(raw)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

var (
	alwaysSix = []float64{0, 0, 0, 0, 0, 0, 1, 0}
	alwaysOut = []float64{0, 0, 0, 0, 0, 0, 0, 1}
)

type recorder struct {
	before, after, ended int
	batters              []int
}

func (r *recorder) BeforeDelivery(*match.State) { r.before++ }
func (r *recorder) AfterDelivery(_ *match.State, batter int, _ match.Outcome) {
	r.after++
	r.batters = append(r.batters, batter)
}
func (r *recorder) MatchEnded(*match.State) { r.ended++ }

func TestRunNotifiesObserver(t *testing.T) {
	rec := &recorder{}
	s := Run(roster.Default(), match.NewSeededRNG(5), rec)
	bowled := match.Deliveries - s.BallsLeft()
	if rec.before != bowled || rec.after != bowled || rec.ended != 1 {
		t.Fatalf("before=%d after=%d ended=%d bowled=%d", rec.before, rec.after, rec.ended, bowled)
	}
	if !s.IsEnded() {
		t.Fatalf("Run returned a live match")
	}
}

func TestRunAllSixes(t *testing.T) {
	rec := &recorder{}
	s := Run(fixedRoster(t, alwaysSix), nil, rec)
	res, ok := s.Result()
	if !ok || res != (match.Result{Kind: match.ChaseWon, Margin: 3}) {
		t.Fatalf("result=%v ok=%v", res, ok)
	}
	if s.BallsLeft() != 17 {
		t.Fatalf("ballsLeft=%d want 17", s.BallsLeft())
	}
	want := []int{0, 0, 0, 0, 0, 0, 1}
	if !reflect.DeepEqual(rec.batters, want) {
		t.Fatalf("strikers=%v want %v", rec.batters, want)
	}
}

func TestRunAllOut(t *testing.T) {
	rec := &recorder{}
	s := Run(fixedRoster(t, alwaysOut), match.NewSeededRNG(1), rec)
	res, _ := s.Result()
	if res != (match.Result{Kind: match.DefendWon, Margin: 40}) {
		t.Fatalf("result=%v", res)
	}
	if want := []int{0, 2, 3}; !reflect.DeepEqual(rec.batters, want) {
		t.Fatalf("strikers=%v want %v", rec.batters, want)
	}
}

func TestRunIsReproducible(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		a := Run(roster.Default(), match.NewSeededRNG(seed), nil).Snapshot()
		b := Run(roster.Default(), match.NewSeededRNG(seed), nil).Snapshot()
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("seed %d: %+v != %+v", seed, a, b)
		}
	}
}

func TestRunMonteCarlo(t *testing.T) {
	const trials = 2000
	rep, err := RunMonteCarlo(roster.Default(), trials, 42)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Trials != trials || rep.ChaseWins+rep.DefendWins+rep.Ties != trials {
		t.Fatalf("report=%+v", rep)
	}
	if d := rep.ChaseWinRate + rep.DefendWinRate + rep.TieRate - 1; math.Abs(d) > 1e-9 {
		t.Fatalf("rates do not sum to 1: %+v", rep)
	}
	if rep.BallsUsed.P99 > match.Deliveries || rep.Wickets.P99 > match.SquadSize-1 {
		t.Fatalf("balls=%+v wickets=%+v", rep.BallsUsed, rep.Wickets)
	}
	again, err := RunMonteCarlo(roster.Default(), trials, 42)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rep, again) {
		t.Fatalf("same seed gave different reports")
	}
}

func TestRunMonteCarloDeterministicRoster(t *testing.T) {
	rep, err := RunMonteCarlo(fixedRoster(t, alwaysSix), 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if rep.ChaseWinRate != 1 || rep.BallsUsed.Mean != 7 || rep.Runs.Mean != 42 || rep.Wickets.Mean != 0 {
		t.Fatalf("report=%+v", rep)
	}
}

func TestRunMonteCarloEdges(t *testing.T) {
	if _, err := RunMonteCarlo(nil, 10, 1); !errors.Is(err, ErrNilRoster) {
		t.Fatalf("err=%v want ErrNilRoster", err)
	}
	rep, err := RunMonteCarlo(roster.Default(), 0, 1)
	if err != nil || !reflect.DeepEqual(rep, Report{}) {
		t.Fatalf("rep=%+v err=%v", rep, err)
	}
}

func TestCalcStats(t *testing.T) {
	st := calcStats([]int{4, 1, 3, 2})
	if st.Mean != 2.5 || st.Var != 1.25 || st.P50 != 2.5 {
		t.Fatalf("stats=%+v", st)
	}
	if math.Abs(st.P90-3.7) > 1e-9 {
		t.Fatalf("p90=%v want 3.7", st.P90)
	}
	if got := calcStats(nil); !reflect.DeepEqual(got, Stats{}) {
		t.Fatalf("empty stats=%+v", got)
	}
}
