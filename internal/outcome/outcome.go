// Package outcome computes the terminal payoff of a finished blackjack
// hand against a finished dealer hand.
package outcome

import (
	"blackjackev/internal/hand"
	"blackjackev/internal/rules"
)

// Evaluate returns the payoff, in units of the wager, once both the
// player's and dealer's hands are final. splitFlag marks a hand reached
// via a split, which gates whether a two-card 21 still pays blackjack
// odds. The decision order follows the engine's natural/bust/compare
// cascade; the first matching condition wins.
func Evaluate(player, dealer hand.Hand, splitFlag bool, rs rules.RuleSet) float64 {
	playerNatural := player.IsNatural() && (!splitFlag || rs.NaturalBlackjackSplits)
	dealerNatural := dealer.IsNatural()

	switch {
	case playerNatural && dealerNatural:
		return 0
	case playerNatural:
		return rs.BlackjackOdds
	case dealerNatural:
		return -1
	}

	playerScore := player.Score()
	dealerScore := dealer.Score()

	switch {
	case playerScore > 21:
		return -1
	case dealerScore > 21:
		return 1
	case playerScore > dealerScore:
		return 1
	case playerScore < dealerScore:
		return -1
	default:
		return 0
	}
}
