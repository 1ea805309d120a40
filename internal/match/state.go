package match

import (
	"errors"
	"slices"
)

const (
	// Target is the run total the chasing side needs.
	Target = 40
	// Deliveries is the innings length: 4 overs of BallsPerOver.
	Deliveries = 24
	// BallsPerOver deliveries complete an over and force a change of strike.
	BallsPerOver = 6
	// SquadSize is the number of batters in the chasing side.
	SquadSize = 4
)

var (
	ErrMatchEnded = errors.New("match: apply called on an ended match")
	ErrNoStriker  = errors.New("match: no batter on strike")
)

// noBatter marks an empty crease end.
const noBatter = -1

// State is the mutable state of one chase. It is created by New, advanced by
// Apply once per delivery and never reused for another match.
type State struct {
	runsLeft   int
	ballsLeft  int
	remaining  []int // batters not yet dismissed, ascending
	score      [SquadSize]int
	ballsFaced [SquadSize]int
	striker    int
	nonStriker int
}

// New returns the state at the first ball of the chase.
func New() *State {
	remaining := make([]int, SquadSize)
	for i := range remaining {
		remaining[i] = i
	}
	return &State{
		runsLeft:   Target,
		ballsLeft:  Deliveries,
		remaining:  remaining,
		striker:    0,
		nonStriker: 1,
	}
}

// IsEnded reports whether the chase is over: the target is reached, the
// deliveries are used up, or fewer than two batters can take the crease.
func (s *State) IsEnded() bool {
	return len(s.remaining) == 1 || s.ballsLeft == 0 || s.runsLeft == 0
}

// Apply advances the state by one delivery with outcome o.
// It panics if the match has ended or nobody is on strike.
func (s *State) Apply(o Outcome) {
	if s.IsEnded() {
		panic(ErrMatchEnded)
	}
	if s.striker == noBatter {
		panic(ErrNoStriker)
	}

	s.ballsLeft--
	s.ballsFaced[s.striker]++

	if o.IsOut() {
		dismissed := s.striker
		s.remaining = slices.DeleteFunc(s.remaining, func(b int) bool { return b == dismissed })
		s.striker = s.nextBatter()
		return
	}

	r := o.RunValue()
	s.runsLeft -= min(r, s.runsLeft)
	// full value is credited even past the target
	s.score[s.striker] += r
	if r%2 != 0 {
		s.swapEnds()
	}
	if s.ballsLeft%BallsPerOver == 0 {
		s.swapEnds()
	}
}

// nextBatter is the first remaining batter not already at the other end.
func (s *State) nextBatter() int {
	for _, b := range s.remaining {
		if b != s.nonStriker {
			return b
		}
	}
	return noBatter
}

func (s *State) swapEnds() {
	s.striker, s.nonStriker = s.nonStriker, s.striker
}

// RunsLeft is the number of runs still needed.
func (s *State) RunsLeft() int { return s.runsLeft }

// BallsLeft is the number of deliveries remaining.
func (s *State) BallsLeft() int { return s.ballsLeft }

// OversLeft is the number of complete overs remaining.
func (s *State) OversLeft() int { return s.ballsLeft / BallsPerOver }

// BattersRemaining returns the batters not yet dismissed, in ascending order.
func (s *State) BattersRemaining() []int { return slices.Clone(s.remaining) }

// IsRemaining reports whether batter i has not been dismissed.
func (s *State) IsRemaining(i int) bool {
	checkBatter(i)
	return slices.Contains(s.remaining, i)
}

// Score returns the runs credited to batter i.
func (s *State) Score(i int) int {
	checkBatter(i)
	return s.score[i]
}

// BallsFaced returns the deliveries faced by batter i.
func (s *State) BallsFaced(i int) int {
	checkBatter(i)
	return s.ballsFaced[i]
}

// Scores returns a copy of every batter's runs.
func (s *State) Scores() [SquadSize]int { return s.score }

// BallsFacedAll returns a copy of every batter's deliveries faced.
func (s *State) BallsFacedAll() [SquadSize]int { return s.ballsFaced }

// Striker returns the batter on strike; false once no batter can come in.
func (s *State) Striker() (int, bool) {
	return s.striker, s.striker != noBatter
}

// NonStriker returns the batter at the bowler's end.
func (s *State) NonStriker() int { return s.nonStriker }

// Snapshot is a value copy of a State, for observers and comparisons.
type Snapshot struct {
	RunsLeft   int
	BallsLeft  int
	Remaining  []int
	Score      [SquadSize]int
	BallsFaced [SquadSize]int
	Striker    int // -1 when no batter can come in
	NonStriker int
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		RunsLeft:   s.runsLeft,
		BallsLeft:  s.ballsLeft,
		Remaining:  slices.Clone(s.remaining),
		Score:      s.score,
		BallsFaced: s.ballsFaced,
		Striker:    s.striker,
		NonStriker: s.nonStriker,
	}
}

func checkBatter(i int) {
	if i < 0 || i >= SquadSize {
		panic("match: unknown batter index")
	}
}
