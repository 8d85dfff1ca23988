// Package strategy turns raw action EVs from internal/engine into the
// vocabulary a trainee practices with: a single best action, a
// hit/stand/double/split letter, and the canned mnemonics and dealer
// strength groupings the drill sessions quiz against.
//
// Earlier versions of this package carried a hand-transcribed basic
// strategy chart (one table entry per player total and dealer upcard).
// That table is gone: every decision here is now the argmax of the four
// EVs internal/engine computes for the exact shoe in play, so the advice
// stays correct for whatever rule set and deck count the caller configures
// instead of being frozen to one infinite-deck assumption.
package strategy

import (
	"fmt"

	"blackjackev/internal/card"
	"blackjackev/internal/engine"
	"blackjackev/internal/hand"
	"blackjackev/internal/rules"
	"blackjackev/internal/shoe"
)

// HandType represents the different types of blackjack hands.
type HandType int

const (
	// HandTypeHard represents hard totals (no ace or ace counting as 1).
	HandTypeHard HandType = iota
	// HandTypeSoft represents soft totals (ace counting as 11).
	HandTypeSoft
	// HandTypePair represents pairs (two identical cards).
	HandTypePair
)

// String returns the string representation of a HandType.
func (ht HandType) String() string {
	switch ht {
	case HandTypeHard:
		return "hard"
	case HandTypeSoft:
		return "soft"
	case HandTypePair:
		return "pair"
	default:
		return "unknown"
	}
}

// MnemonicKey represents the different types of mnemonic explanations.
type MnemonicKey int

const (
	MnemonicAlwaysSplit MnemonicKey = iota
	MnemonicNeverSplit
	MnemonicDealerWeak
	MnemonicTeensVsStrong
	MnemonicSoft17
	MnemonicHard12
	MnemonicDoubles
)

// String returns the string key for a MnemonicKey.
func (mk MnemonicKey) String() string {
	switch mk {
	case MnemonicAlwaysSplit:
		return "always_split"
	case MnemonicNeverSplit:
		return "never_split"
	case MnemonicDealerWeak:
		return "dealer_weak"
	case MnemonicTeensVsStrong:
		return "teens_vs_strong"
	case MnemonicSoft17:
		return "soft_17"
	case MnemonicHard12:
		return "hard_12"
	case MnemonicDoubles:
		return "doubles"
	default:
		return "unknown"
	}
}

// Decision is the engine's verdict for one scenario: the best action, all
// four EVs it was chosen from, and a human mnemonic for why.
type Decision struct {
	Action      rune
	StandEV     float64
	HitEV       float64
	DoubleEV    float64
	SplitEV     float64 // only meaningful when Splittable
	Splittable  bool
	Explanation string
}

// EVFor returns the EV this decision computed for action ('H', 'S', 'D',
// or 'Y'/'P' for split), and whether that action was actually evaluated
// (split is only meaningful when Splittable).
func (d Decision) EVFor(action rune) (float64, bool) {
	switch action {
	case 'H':
		return d.HitEV, true
	case 'S':
		return d.StandEV, true
	case 'D':
		return d.DoubleEV, true
	case 'Y', 'P':
		if !d.Splittable {
			return 0, false
		}
		return d.SplitEV, true
	default:
		return 0, false
	}
}

// BestEV returns the EV of the action this decision recommends.
func (d Decision) BestEV() float64 {
	ev, _ := d.EVFor(d.Action)
	return ev
}

// NormalizeAction maps the trainer's legacy split shorthand 'P' onto the
// engine's 'Y' split action; every other action passes through unchanged.
func NormalizeAction(action rune) rune {
	if action == 'P' {
		return 'Y'
	}
	return action
}

// Advisor evaluates scenarios against a fixed rule set and deck count,
// owning a single engine so repeated lookups reuse its memoization cache.
type Advisor struct {
	decks        int
	rules        rules.RuleSet
	eng          *engine.Engine
	mnemonics    map[MnemonicKey]string
	dealerGroups map[string][]int
}

// New creates an Advisor over a fresh shoe of decks decks, under rs.
func New(decks int, rs rules.RuleSet) *Advisor {
	a := &Advisor{
		decks:        decks,
		rules:        rs,
		eng:          engine.New(rs),
		mnemonics:    make(map[MnemonicKey]string),
		dealerGroups: make(map[string][]int),
	}
	a.buildMnemonics()
	a.buildDealerGroups()
	return a
}

// toRank converts a pip value as used by the trainer (2-10, or 11 for an
// ace) into a card.Rank.
func toRank(pip int) card.Rank {
	if pip == 11 {
		return card.Ace
	}
	return card.Rank(pip)
}

// freshShoeLessDealt returns a shoe.Shoe for a's configured deck count
// with the given cards already removed, one draw at a time.
func (a *Advisor) freshShoeLessDealt(pips ...int) shoe.Shoe {
	s := shoe.NewDecks(a.decks)
	for _, p := range pips {
		s = s.Drawn(toRank(p))
	}
	return s
}

// PipsOf converts a hand.Hand into the pip-value vocabulary Evaluate and
// CardToString use (an Ace is 11, not 1), the inverse of toRank.
func PipsOf(h hand.Hand) []int {
	pips := make([]int, len(h))
	for i, r := range h {
		if r == card.Ace {
			pips[i] = 11
		} else {
			pips[i] = int(r)
		}
	}
	return pips
}

// Evaluate computes the full Decision for a scenario against a fresh shoe
// of a's configured deck count, minus the scenario's own dealt cards.
func (a *Advisor) Evaluate(playerCards []int, dealerCard int) Decision {
	dealt := append(append([]int{}, playerCards...), dealerCard)
	return a.EvaluateInShoe(a.freshShoeLessDealt(dealt...), playerCards, dealerCard)
}

// EvaluateInShoe computes the full Decision for a scenario against an
// explicit shoe, letting a caller that tracks its own running shoe (a
// training session drawing down a shared shoe across many hands, the way
// internal/bench prices a scenario against an explicitly depleted shoe)
// get EVs that reflect real shoe penetration instead of a fresh reshuffle
// every time.
func (a *Advisor) EvaluateInShoe(s shoe.Shoe, playerCards []int, dealerCard int) Decision {
	player := make(hand.Hand, 0, len(playerCards))
	for _, p := range playerCards {
		player = append(player, toRank(p))
	}
	dealer := hand.Hand{toRank(dealerCard)}

	standEV, _ := a.eng.Stand(s, player, dealer)
	hitEV, _ := a.eng.Hit(s, player, dealer)
	doubleEV, _ := a.eng.Double(s, player, dealer)

	best := standEV
	action := rune('S')
	if hitEV > best {
		best = hitEV
		action = 'H'
	}
	if doubleEV > best {
		best = doubleEV
		action = 'D'
	}

	d := Decision{Action: action, StandEV: standEV, HitEV: hitEV, DoubleEV: doubleEV}

	if player.CanSplit() {
		splitEV, err := a.eng.Split(s, player, dealer)
		if err == nil {
			d.Splittable = true
			d.SplitEV = splitEV
			if splitEV > best {
				best = splitEV
				action = 'Y'
			}
		}
	}

	d.Action = action
	handType := classify(playerCards)
	total := sum(playerCards)
	if handType == HandTypePair {
		total = playerCards[0]
	}
	d.Explanation = a.explain(handType, total, dealerCard)
	return d
}

// GetCorrectAction is a thin convenience wrapper over Evaluate for
// callers, like the training sessions, that only need the letter.
func (a *Advisor) GetCorrectAction(playerCards []int, dealerCard int) rune {
	return a.Evaluate(playerCards, dealerCard).Action
}

// GetExplanation mirrors the old chart's canned mnemonic lookup, keyed
// off the scenario's shape rather than a table entry.
func (a *Advisor) GetExplanation(handType HandType, playerTotal, dealerCard int) string {
	return a.explain(handType, playerTotal, dealerCard)
}

func (a *Advisor) explain(handType HandType, playerTotal, dealerCard int) string {
	switch handType {
	case HandTypePair:
		switch playerTotal {
		case 11, 8:
			return a.mnemonics[MnemonicAlwaysSplit]
		case 10, 5:
			return a.mnemonics[MnemonicNeverSplit]
		}
	case HandTypeSoft:
		if playerTotal == 18 {
			return a.mnemonics[MnemonicSoft17]
		}
	case HandTypeHard:
		if playerTotal == 12 {
			return a.mnemonics[MnemonicHard12]
		}
	}

	for _, c := range a.dealerGroups["weak"] {
		if c == dealerCard {
			return a.mnemonics[MnemonicDealerWeak]
		}
	}
	if playerTotal >= 13 && playerTotal <= 16 {
		for _, c := range a.dealerGroups["strong"] {
			if c == dealerCard {
				return a.mnemonics[MnemonicTeensVsStrong]
			}
		}
	}

	return "Follow the EV: take whichever action the engine ranks highest."
}

// IsAbsoluteRule reports whether a scenario is one of the "always/never"
// rules drilled by the absolutes training session.
func (a *Advisor) IsAbsoluteRule(handType HandType, playerTotal int) bool {
	switch handType {
	case HandTypePair:
		return playerTotal == 11 || playerTotal == 8 || playerTotal == 10 || playerTotal == 5
	case HandTypeHard:
		return playerTotal >= 17
	case HandTypeSoft:
		return playerTotal >= 19
	}
	return false
}

// GetDealerGroups returns the dealer strength groups.
func (a *Advisor) GetDealerGroups() map[string][]int {
	return a.dealerGroups
}

func (a *Advisor) buildMnemonics() {
	a.mnemonics[MnemonicDealerWeak] = "Dealer bust cards (4,5,6) = player gets greedy"
	a.mnemonics[MnemonicAlwaysSplit] = "Aces and eights, don't hesitate"
	a.mnemonics[MnemonicNeverSplit] = "Tens and fives, keep them alive"
	a.mnemonics[MnemonicTeensVsStrong] = "Teens stay vs weak, flee from strong"
	a.mnemonics[MnemonicSoft17] = "A,7 is the tricky soft hand"
	a.mnemonics[MnemonicHard12] = "12 is the exception - only stand vs 4,5,6"
	a.mnemonics[MnemonicDoubles] = "Double when dealer is weak and you can improve"
}

func (a *Advisor) buildDealerGroups() {
	a.dealerGroups["weak"] = []int{4, 5, 6}
	a.dealerGroups["medium"] = []int{2, 3, 7, 8}
	a.dealerGroups["strong"] = []int{9, 10, 11}
}

// classify infers a HandType from a raw pip slice the way the training
// sessions construct them: a same-value pair, an ace plus one other card
// (soft), or anything else (hard).
func classify(playerCards []int) HandType {
	if len(playerCards) == 2 && playerCards[0] == playerCards[1] {
		return HandTypePair
	}
	if len(playerCards) == 2 && (playerCards[0] == 11 || playerCards[1] == 11) {
		return HandTypeSoft
	}
	return HandTypeHard
}

func sum(playerCards []int) int {
	total := 0
	for _, c := range playerCards {
		total += c
	}
	return total
}

// ActionToString converts action rune to full word for display.
func ActionToString(action rune) string {
	switch action {
	case 'H':
		return "HIT"
	case 'S':
		return "STAND"
	case 'D':
		return "DOUBLE"
	case 'Y', 'P':
		return "SPLIT"
	default:
		return "UNKNOWN"
	}
}

// CardToString converts card value to display string.
func CardToString(c int) string {
	switch c {
	case 11:
		return "A"
	case 10:
		return "10"
	default:
		return fmt.Sprintf("%d", c)
	}
}
