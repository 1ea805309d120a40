package match

import "strconv"

// MaxRuns is the largest run value a single delivery can carry.
const MaxRuns = 6

// outcomeCount is the size of the outcome alphabet: runs 0..6 plus a dismissal.
const outcomeCount = MaxRuns + 2

// Outcome is the result of one delivery: either a run value in 0..6 or a
// dismissal. The zero value is a dot ball.
type Outcome struct {
	runs int
	out  bool
}

// Out is the dismissal outcome.
var Out = Outcome{out: true}

// Runs returns the outcome scoring n runs. n outside 0..6 is a programming
// error.
func Runs(n int) Outcome {
	if n < 0 || n > MaxRuns {
		panic("match: run value " + strconv.Itoa(n) + " outside 0.." + strconv.Itoa(MaxRuns))
	}
	return Outcome{runs: n}
}

// IsOut reports whether the striker was dismissed.
func (o Outcome) IsOut() bool { return o.out }

// RunValue is the number of runs scored; always 0 for a dismissal.
func (o Outcome) RunValue() int {
	if o.out {
		return 0
	}
	return o.runs
}

func (o Outcome) String() string {
	if o.out {
		return "OUT"
	}
	return strconv.Itoa(o.runs)
}

// outcomeAt maps a canonical alphabet index to its outcome; the last index is
// the dismissal.
func outcomeAt(i int) Outcome {
	if i == outcomeCount-1 {
		return Out
	}
	return Runs(i)
}
