// Package commentary renders a chase as ball-by-ball text.
package commentary

import (
	"io"

	"golang.org/x/text/message"

	"github.com/xtding233/runchase/internal/match"
	"github.com/xtding233/runchase/internal/roster"
)

// Commentator writes commentary for one match to w.
type Commentator struct {
	w      io.Writer
	p      *message.Printer
	roster *roster.Roster
	err    error
}

// New returns a Commentator naming batters and teams from r.
func New(w io.Writer, r *roster.Roster) *Commentator {
	return &Commentator{w: w, p: newPrinter(), roster: r}
}

// Err returns the first write error, if any.
func (c *Commentator) Err() error { return c.err }

// line formats key through the catalog and writes it as one line.
func (c *Commentator) line(key message.Reference, args ...any) {
	if c.err != nil {
		return
	}
	_, c.err = io.WriteString(c.w, c.p.Sprintf(key, args...)+"\n")
}

// OversLeft announces the state of the chase at the start of every over.
func (c *Commentator) OversLeft(s *match.State) {
	if s.BallsLeft()%match.BallsPerOver != 0 {
		return
	}
	c.line("\n%s. %s", c.p.Sprintf(keyOvers, s.OversLeft()), c.p.Sprintf(keyRunsWin, s.RunsLeft()))
}

// Delivery reports one ball; s is the state after it was applied.
func (c *Commentator) Delivery(s *match.State, batter int, o match.Outcome) {
	name := c.roster.Batter(batter).Name
	if o.IsOut() {
		c.line(keyOut, name, s.Score(batter), s.BallsFaced(batter))
		return
	}
	c.line(keyScores, name, o.RunValue())
}

// Summary states the result; nothing is written while the match is live.
func (c *Commentator) Summary(s *match.State) {
	res, ok := s.Result()
	if !ok {
		return
	}
	balls := c.p.Sprintf(keyBalls, s.BallsLeft())
	switch res.Kind {
	case match.ChaseWon:
		c.line("\n\n%s won by %s with %s", c.roster.Chasing, c.p.Sprintf(keyWickets, res.Margin), balls)
	case match.DefendWon:
		c.line("\n\n%s won by %s with %s", c.roster.Defending, c.p.Sprintf(keyRuns, res.Margin), balls)
	case match.Tie:
		c.line("\n\nMatch tied between %s and %s", c.roster.Chasing, c.roster.Defending)
	}
}

// Scoreboard lists every batter who faced a ball; not-out batters get an
// asterisk.
func (c *Commentator) Scoreboard(s *match.State) {
	for i, b := range c.roster.Batters {
		if s.BallsFaced(i) == 0 {
			continue
		}
		notOut := " "
		if s.IsRemaining(i) {
			notOut = "* "
		}
		c.line(keyCard, b.Name, s.Score(i), notOut, s.BallsFaced(i))
	}
}

// BeforeDelivery implements sim.Observer.
func (c *Commentator) BeforeDelivery(s *match.State) { c.OversLeft(s) }

// AfterDelivery implements sim.Observer.
func (c *Commentator) AfterDelivery(s *match.State, batter int, o match.Outcome) {
	c.Delivery(s, batter, o)
}

// MatchEnded implements sim.Observer.
func (c *Commentator) MatchEnded(s *match.State) {
	c.Summary(s)
	c.Scoreboard(s)
}
