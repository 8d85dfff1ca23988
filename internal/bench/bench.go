// Package bench runs an EV engine over many scenarios concurrently, one
// worker per CPU, the way the reference solver trainer splits a training
// batch across goroutines and joins their partial results — except here
// the fan-out is expressed with golang.org/x/sync/errgroup instead of a
// hand-rolled WaitGroup and mutex, since every worker's job is already
// independent and first-error cancellation is all the coordination
// required.
package bench

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"blackjackev/internal/bjlog"
	"blackjackev/internal/engine"
	"blackjackev/internal/hand"
	"blackjackev/internal/rules"
	"blackjackev/internal/shoe"
)

// Scenario is one (player, dealer) lookup to price.
type Scenario struct {
	Player hand.Hand
	Dealer hand.Hand
}

// Result is a priced Scenario: the four action EVs, or an error if the
// engine rejected the scenario (an empty hand). A non-pair is not an
// error: SplitEV stays zero and Splittable stays false.
type Result struct {
	Scenario   Scenario
	StandEV    float64
	HitEV      float64
	DoubleEV   float64
	SplitEV    float64
	Splittable bool
	Err        error
}

// Workers returns a worker count worth using: one per logical CPU, with
// a floor of 1 so single-core hosts still make progress.
func Workers() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

// Run prices every scenario under decks decks and rs, sharding the work
// across Workers() goroutines, each with its own Engine (and therefore
// its own memoization cache — caches are never shared across goroutines
// since Engine is not safe for concurrent use). Results are returned in
// the same order as scenarios. Run stops and returns the first worker
// error if ctx is cancelled.
func Run(ctx context.Context, scenarios []Scenario, decks int, rs rules.RuleSet) ([]Result, error) {
	results := make([]Result, len(scenarios))
	workers := Workers()
	if workers > len(scenarios) {
		workers = len(scenarios)
	}
	if workers == 0 {
		return results, nil
	}

	log := bjlog.For("bench")
	log.Debugf("pricing %d scenarios across %d workers", len(scenarios), workers)

	g, gctx := errgroup.WithContext(ctx)
	chunk := (len(scenarios) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= len(scenarios) {
			break
		}
		if end > len(scenarios) {
			end = len(scenarios)
		}

		g.Go(func() error {
			eng := engine.New(rs)
			base := shoe.NewDecks(decks)
			for i := start; i < end; i++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				results[i] = price(eng, shoeFor(base, scenarios[i]), scenarios[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// shoeFor removes a scenario's already-dealt cards from base, so EVs are
// priced against what actually remains in the shoe.
func shoeFor(base shoe.Shoe, sc Scenario) shoe.Shoe {
	s := base
	for _, r := range sc.Player {
		s = s.Drawn(r)
	}
	for _, r := range sc.Dealer {
		s = s.Drawn(r)
	}
	return s
}

func price(eng *engine.Engine, s shoe.Shoe, sc Scenario) Result {
	r := Result{Scenario: sc}
	r.StandEV, r.Err = eng.Stand(s, sc.Player, sc.Dealer)
	if r.Err != nil {
		return r
	}
	r.HitEV, r.Err = eng.Hit(s, sc.Player, sc.Dealer)
	if r.Err != nil {
		return r
	}
	r.DoubleEV, r.Err = eng.Double(s, sc.Player, sc.Dealer)
	if r.Err != nil {
		return r
	}
	if sc.Player.CanSplit() {
		splitEV, err := eng.Split(s, sc.Player, sc.Dealer)
		if err == nil {
			r.Splittable = true
			r.SplitEV = splitEV
		}
	}
	return r
}
