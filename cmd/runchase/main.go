// Package main simulates a run chase, ball by ball or as a Monte Carlo batch.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/xtding233/runchase/internal/commentary"
	"github.com/xtding233/runchase/internal/config"
	"github.com/xtding233/runchase/internal/match"
	"github.com/xtding233/runchase/internal/roster"
	"github.com/xtding233/runchase/internal/sim"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	var jsonOutput bool
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = fresh seed, logged for replay; env RUNCHASE_SEED)")
	flag.StringVar(&cfg.RosterPath, "roster", cfg.RosterPath, "YAML roster overlaid on the built-in squad (env RUNCHASE_ROSTER)")
	flag.IntVar(&cfg.Trials, "trials", cfg.Trials, "play this many matches and report win rates (0 = one match with commentary; env RUNCHASE_TRIALS)")
	flag.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "only print the result and scoreboard (env RUNCHASE_QUIET)")
	flag.BoolVar(&jsonOutput, "json", false, "print the Monte Carlo report as JSON")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		config.Exitf("Error: %v", err)
	}

	r, err := loadRoster(cfg.RosterPath)
	if err != nil {
		log.Fatalf("roster: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = match.NewSeed(); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}
	log.Printf("seed %d (%s vs %s, target %d from %d balls)", seed, r.Chasing, r.Defending, match.Target, match.Deliveries)

	if cfg.Trials > 0 {
		rep, err := sim.RunMonteCarlo(r, cfg.Trials, seed)
		if err != nil {
			log.Fatalf("monte carlo: %v", err)
		}
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rep); err != nil {
				log.Fatalf("encode report: %v", err)
			}
			return
		}
		if err := printReport(os.Stdout, r, rep); err != nil {
			log.Fatalf("write report: %v", err)
		}
		return
	}

	c := commentary.New(os.Stdout, r)
	var obs sim.Observer = c
	if cfg.Quiet {
		obs = resultOnly{c}
	}
	sim.Run(r, match.NewSeededRNG(seed), obs)
	if err := c.Err(); err != nil {
		log.Fatalf("write commentary: %v", err)
	}
}

func loadRoster(path string) (*roster.Roster, error) {
	if path == "" {
		return roster.Default(), nil
	}
	return roster.Load(path)
}

// resultOnly drops the ball-by-ball lines.
type resultOnly struct{ c *commentary.Commentator }

func (resultOnly) BeforeDelivery(*match.State)                    {}
func (resultOnly) AfterDelivery(*match.State, int, match.Outcome) {}
func (q resultOnly) MatchEnded(s *match.State)                    { q.c.MatchEnded(s) }

func printReport(w io.Writer, r *roster.Roster, rep sim.Report) error {
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w,
		"%d matches\n%s win %.2f%%\n%s win %.2f%%\ntied %.2f%%\nruns mean %.1f (p50 %.0f, p90 %.0f)\nballs mean %.1f\nwickets mean %.2f\n",
		rep.Trials,
		r.Chasing, rep.ChaseWinRate*100,
		r.Defending, rep.DefendWinRate*100,
		rep.TieRate*100,
		rep.Runs.Mean, rep.Runs.P50, rep.Runs.P90,
		rep.BallsUsed.Mean,
		rep.Wickets.Mean,
	)
	if err != nil {
		return fmt.Errorf("print report: %w", err)
	}
	return nil
}
