package match

import "fmt"

// ResultKind classifies a finished match.
type ResultKind int

const (
	ChaseWon ResultKind = iota + 1
	DefendWon
	Tie
)

func (k ResultKind) String() string {
	switch k {
	case ChaseWon:
		return "chase_won"
	case DefendWon:
		return "defend_won"
	case Tie:
		return "tie"
	}
	return "unknown"
}

// Result is the outcome of a finished match. Margin is wickets in hand for
// ChaseWon, runs for DefendWon and 0 for a Tie.
type Result struct {
	Kind   ResultKind
	Margin int
}

func (r Result) String() string {
	switch r.Kind {
	case ChaseWon:
		return fmt.Sprintf("chasing side won by %d wickets", r.Margin)
	case DefendWon:
		return fmt.Sprintf("defending side won by %d runs", r.Margin)
	case Tie:
		return "match tied"
	}
	return "no result"
}

// Result classifies the match from runs left once it has ended; false while
// it is still in progress.
// One run short at the close is a tie: the last run needed would only have
// levelled the scores.
func (s *State) Result() (Result, bool) {
	if !s.IsEnded() {
		return Result{}, false
	}
	switch {
	case s.runsLeft == 0:
		return Result{Kind: ChaseWon, Margin: len(s.remaining) - 1}, true
	case s.runsLeft == 1:
		return Result{Kind: Tie}, true
	default:
		return Result{Kind: DefendWon, Margin: s.runsLeft}, true
	}
}
