// Package sim drives a chase to its end: it asks the state who is on strike,
// samples that batter's profile and feeds the outcome back.
package sim

import (
	"github.com/xtding233/runchase/internal/match"
	"github.com/xtding233/runchase/internal/roster"
)

// Observer is notified around every delivery of a match.
type Observer interface {
	BeforeDelivery(s *match.State)
	AfterDelivery(s *match.State, batter int, o match.Outcome)
	MatchEnded(s *match.State)
}

type nopObserver struct{}

func (nopObserver) BeforeDelivery(*match.State)                    {}
func (nopObserver) AfterDelivery(*match.State, int, match.Outcome) {}
func (nopObserver) MatchEnded(*match.State)                        {}

// Run plays one match with r's batters and returns the final state.
// A nil rng uses match.DefaultRNG; a nil obs is silent.
func Run(r *roster.Roster, rng match.RandomSource, obs Observer) *match.State {
	if rng == nil {
		rng = match.DefaultRNG()
	}
	if obs == nil {
		obs = nopObserver{}
	}
	s := match.New()
	for !s.IsEnded() {
		batter, ok := s.Striker()
		if !ok {
			panic(match.ErrNoStriker)
		}
		obs.BeforeDelivery(s)
		o := match.Sample(r.Profile(batter), rng)
		s.Apply(o)
		obs.AfterDelivery(s, batter, o)
	}
	obs.MatchEnded(s)
	return s
}
