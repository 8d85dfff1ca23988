// Package rules defines the blackjack rule-configuration flags the EV
// engine consults. A RuleSet is immutable once built and owned by a
// single engine instance for its lifetime.
package rules

// RuleSet is the tuple of policy flags described in the engine's external
// interface. Every field is a direct rendering of one flag; there is no
// derived state.
type RuleSet struct {
	// BlackjackOdds is the payoff multiplier for a player natural,
	// typically 1.5 (3:2) or 1.2 (6:5).
	BlackjackOdds float64
	// DealerHitsOnSoft17, if true, makes the dealer draw on a soft 17
	// instead of standing.
	DealerHitsOnSoft17 bool
	// DealerPeeksFor21, if true, prunes the dealer-draw branches that
	// would have already been revealed by a pre-play peek.
	DealerPeeksFor21 bool
	// NaturalBlackjackSplits, if true, pays blackjack odds for a 21 on
	// two cards reached after a split; otherwise it pays even money.
	NaturalBlackjackSplits bool
	// DoubleAfterSplit enables the double-EV branch inside split.
	DoubleAfterSplit bool
	// HitSplitAces allows hitting a hand resulting from splitting aces.
	HitSplitAces bool
	// DoubleSplitAces allows doubling a hand resulting from splitting
	// aces. Only takes effect when HitSplitAces and DoubleAfterSplit are
	// also set.
	DoubleSplitAces bool
	// CanSurrender is reserved: the surrender option is configurable but
	// its EV is not computed by this engine.
	CanSurrender bool
}

// Default returns the common 6-deck, dealer-stands-on-soft-17, 3:2
// blackjack, double-after-split table configuration.
func Default() RuleSet {
	return RuleSet{
		BlackjackOdds:          1.5,
		DealerHitsOnSoft17:     false,
		DealerPeeksFor21:       true,
		NaturalBlackjackSplits: true,
		DoubleAfterSplit:       true,
		HitSplitAces:           false,
		DoubleSplitAces:        false,
		CanSurrender:           false,
	}
}

// Vegas6to5 returns a common single/double-deck configuration that pays
// 6:5 on naturals and hits soft 17 — a worse-for-the-player variant seen
// on many low-minimum tables.
func Vegas6to5() RuleSet {
	rs := Default()
	rs.BlackjackOdds = 1.2
	rs.DealerHitsOnSoft17 = true
	return rs
}
