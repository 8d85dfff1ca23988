// Package engine implements the deterministic expected-value computation
// for the four blackjack player actions: stand, hit, double, and split.
//
// Given a shoe composition, a player hand, and a dealer hand, the engine
// enumerates every reachable future card sequence weighted by its exact
// conditional probability under the remaining shoe, rather than sampling.
// An Engine instance is not safe for concurrent use: it owns a single
// memoization cache and mutates no shared state, but callers wanting
// parallelism must shard work across independent Engine instances (see
// internal/bench for exactly that).
package engine

import (
	"errors"
	"math"

	"blackjackev/internal/cache"
	"blackjackev/internal/card"
	"blackjackev/internal/hand"
	"blackjackev/internal/outcome"
	"blackjackev/internal/rules"
	"blackjackev/internal/shoe"
)

// ErrMissingInput is returned when the player or dealer hand is empty. The
// shoe is not checked: an empty shoe yields an EV of 0.
var ErrMissingInput = errors.New("engine: missing shoe or hand input")

// ErrNotSplittable is returned by Split when the player's hand is not an
// eligible pair.
var ErrNotSplittable = errors.New("engine: hand is not splittable")

// Engine computes action EVs under a fixed rule set, memoizing every
// state it visits for the lifetime of the instance.
type Engine struct {
	rules rules.RuleSet
	cache *cache.Cache
}

// New returns a fresh Engine with an empty cache, configured with rs.
func New(rs rules.RuleSet) *Engine {
	return &Engine{rules: rs, cache: cache.New()}
}

// Rules returns the engine's rule configuration.
func (e *Engine) Rules() rules.RuleSet {
	return e.rules
}

// CacheSize reports how many distinct states this engine has memoized so
// far, mostly useful for diagnostics and benchmarking.
func (e *Engine) CacheSize() int {
	return e.cache.Len()
}

func validateHands(player, dealer hand.Hand) error {
	if len(player) == 0 || len(dealer) == 0 {
		return ErrMissingInput
	}
	return nil
}

// Stand returns the EV of standing immediately: the dealer plays out
// under house rules and the hands are compared.
func (e *Engine) Stand(s shoe.Shoe, player, dealer hand.Hand) (float64, error) {
	if err := validateHands(player, dealer); err != nil {
		return 0, err
	}
	return e.standEV(s, player.Clone(), dealer.Clone(), false), nil
}

// Hit returns the EV of taking one card now and then playing optimally
// (hit again or stand) from there.
func (e *Engine) Hit(s shoe.Shoe, player, dealer hand.Hand) (float64, error) {
	if err := validateHands(player, dealer); err != nil {
		return 0, err
	}
	return e.hitEV(s, player.Clone(), dealer.Clone(), false), nil
}

// Double returns the EV of doubling the wager and taking exactly one more
// card before standing.
func (e *Engine) Double(s shoe.Shoe, player, dealer hand.Hand) (float64, error) {
	if err := validateHands(player, dealer); err != nil {
		return 0, err
	}
	return e.doubleEV(s, player.Clone(), dealer.Clone(), false), nil
}

// Split returns the EV of splitting a pair into two hands and playing
// each optimally. It fails with ErrNotSplittable if the hand is not a
// two-card pair.
func (e *Engine) Split(s shoe.Shoe, player, dealer hand.Hand) (float64, error) {
	if err := validateHands(player, dealer); err != nil {
		return 0, err
	}
	if !player.CanSplit() {
		return 0, ErrNotSplittable
	}
	return e.splitEV(s, player.Clone(), dealer.Clone()), nil
}

// standEV is both the public Stand computation and the dealer-play
// recursion: it is memoized at every recursive step, not just at the
// public entry point, the same way a transposition table probes and
// stores at every node of a game-tree search, not only at the root.
func (e *Engine) standEV(s shoe.Shoe, player, dealer hand.Hand, splitFlag bool) float64 {
	key := cache.Key{
		Shoe:        s,
		PlayerScore: player.Score(),
		PlayerSoft:  player.IsSoft(),
		DealerScore: dealer.Score(),
		SplitFlag:   splitFlag,
		Action:      cache.Stand,
	}
	if v, ok := e.cache.Get(key); ok {
		return v
	}

	var v float64
	if dealerDone(dealer, e.rules) {
		v = outcome.Evaluate(player, dealer, splitFlag, e.rules)
	} else {
		var weighted, totalWeight float64
		for r := card.Ace; r <= card.Ten; r++ {
			count := s.Count(r)
			if count == 0 {
				continue
			}
			if e.rules.DealerPeeksFor21 && len(dealer) == 1 && completesNatural(dealer[0], r) {
				continue
			}
			child := e.standEV(s.Drawn(r), player, dealer.Append(r), splitFlag)
			weighted += float64(count) * child
			totalWeight += float64(count)
		}
		if totalWeight > 0 {
			v = weighted / totalWeight
		}
	}

	e.cache.Set(key, v)
	return v
}

// hitEV enumerates the next card, contributing a guaranteed bust loss or
// the better of standing versus hitting again.
func (e *Engine) hitEV(s shoe.Shoe, player, dealer hand.Hand, splitFlag bool) float64 {
	key := cache.Key{
		Shoe:        s,
		PlayerScore: player.Score(),
		PlayerSoft:  player.IsSoft(),
		DealerScore: dealer.Score(),
		SplitFlag:   splitFlag,
		Action:      cache.Hit,
	}
	if v, ok := e.cache.Get(key); ok {
		return v
	}

	var weighted, totalWeight float64
	for r := card.Ace; r <= card.Ten; r++ {
		count := s.Count(r)
		if count == 0 {
			continue
		}
		next := player.Append(r)
		var child float64
		if next.IsBust() {
			child = -1
		} else {
			ns := s.Drawn(r)
			child = math.Max(e.standEV(ns, next, dealer, splitFlag), e.hitEV(ns, next, dealer, splitFlag))
		}
		weighted += float64(count) * child
		totalWeight += float64(count)
	}

	v := 0.0
	if totalWeight > 0 {
		v = weighted / totalWeight
	}
	e.cache.Set(key, v)
	return v
}

// doubleEV enumerates the single next card, contributing a guaranteed
// doubled bust loss or twice the resulting stand EV.
func (e *Engine) doubleEV(s shoe.Shoe, player, dealer hand.Hand, splitFlag bool) float64 {
	key := cache.Key{
		Shoe:        s,
		PlayerScore: player.Score(),
		PlayerSoft:  player.IsSoft(),
		DealerScore: dealer.Score(),
		SplitFlag:   splitFlag,
		Action:      cache.Double,
	}
	if v, ok := e.cache.Get(key); ok {
		return v
	}

	var weighted, totalWeight float64
	for r := card.Ace; r <= card.Ten; r++ {
		count := s.Count(r)
		if count == 0 {
			continue
		}
		next := player.Append(r)
		var child float64
		if next.IsBust() {
			child = -2
		} else {
			child = 2 * e.standEV(s.Drawn(r), next, dealer, splitFlag)
		}
		weighted += float64(count) * child
		totalWeight += float64(count)
	}

	v := 0.0
	if totalWeight > 0 {
		v = weighted / totalWeight
	}
	e.cache.Set(key, v)
	return v
}

// splitEV implements §4.5's split procedure: the pair's rank seeds a
// single-card hand, which is then completed by each possible draw and
// played optimally with splitFlag=true, under the split-specific gating
// for hitting and doubling split aces. Both hands are assumed to share
// the same EV by symmetry (§9's documented open question; the engine does
// not model the two hands drawing from progressively different shoes).
func (e *Engine) splitEV(s shoe.Shoe, player, dealer hand.Hand) float64 {
	key := cache.Key{
		Shoe:        s,
		PlayerScore: player.Score(),
		PlayerSoft:  player.IsSoft(),
		DealerScore: dealer.Score(),
		SplitFlag:   false,
		Action:      cache.Split,
	}
	if v, ok := e.cache.Get(key); ok {
		return v
	}

	splitCard := player[0]
	isAceSplit := splitCard == card.Ace
	single := hand.Hand{splitCard}

	canHit := !isAceSplit || e.rules.HitSplitAces
	canDouble := e.rules.DoubleAfterSplit && (!isAceSplit || (e.rules.HitSplitAces && e.rules.DoubleSplitAces))

	var weighted, totalWeight float64
	for r := card.Ace; r <= card.Ten; r++ {
		count := s.Count(r)
		if count == 0 {
			continue
		}
		ns := s.Drawn(r)
		first := single.Append(r)

		best := e.standEV(ns, first, dealer, true)
		if canHit {
			best = math.Max(best, e.hitEV(ns, first, dealer, true))
		}
		if canDouble {
			best = math.Max(best, e.doubleEV(ns, first, dealer, true))
		}

		weighted += float64(count) * 2 * best
		totalWeight += float64(count)
	}

	v := 0.0
	if totalWeight > 0 {
		v = weighted / totalWeight
	}
	e.cache.Set(key, v)
	return v
}

// dealerDone reports whether the dealer's hand has reached its final,
// terminal total under the house's drawing policy: any total above 17, a
// hard 17, or a soft 17 when the house stands on soft 17.
func dealerDone(dealer hand.Hand, rs rules.RuleSet) bool {
	score := dealer.Score()
	if score > 17 {
		return true
	}
	if score < 17 {
		return false
	}
	if !dealer.IsSoft() {
		return true
	}
	return !rs.DealerHitsOnSoft17
}

// completesNatural reports whether drawing r as the dealer's hole card,
// given upCard showing, would have produced a dealer natural. Used to
// prune the two branches a pre-play peek would already have revealed.
func completesNatural(upCard, r card.Rank) bool {
	return (upCard == card.Ten && r == card.Ace) || (upCard == card.Ace && r == card.Ten)
}
