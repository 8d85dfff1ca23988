package outcome

import (
	"testing"

	"blackjackev/internal/card"
	"blackjackev/internal/hand"
	"blackjackev/internal/rules"
)

func TestPlayerNaturalBeatsDealer20(t *testing.T) {
	player := hand.Hand{card.Ace, card.Ten}
	dealer := hand.Hand{card.Ten, card.Nine, card.Ace}
	got := Evaluate(player, dealer, false, rules.Default())
	if got != 1.5 {
		t.Errorf("Evaluate = %v, want 1.5", got)
	}
}

func TestBothNaturalPush(t *testing.T) {
	player := hand.Hand{card.Ace, card.Ten}
	dealer := hand.Hand{card.Ten, card.Ace}
	got := Evaluate(player, dealer, false, rules.Default())
	if got != 0 {
		t.Errorf("Evaluate = %v, want 0", got)
	}
}

func TestDealerNaturalBeatsPlayer20(t *testing.T) {
	player := hand.Hand{card.Ten, card.Ten}
	dealer := hand.Hand{card.Ace, card.Ten}
	got := Evaluate(player, dealer, false, rules.Default())
	if got != -1 {
		t.Errorf("Evaluate = %v, want -1", got)
	}
}

func TestSplitNaturalPaysEvenMoneyWhenDisallowed(t *testing.T) {
	rs := rules.Default()
	rs.NaturalBlackjackSplits = false
	player := hand.Hand{card.Ace, card.Ten}
	dealer := hand.Hand{card.Ten, card.Nine, card.Five}
	got := Evaluate(player, dealer, true, rs)
	if got != 1 {
		t.Errorf("Evaluate = %v, want 1 (even money, not blackjack odds)", got)
	}
}

func TestSplitNaturalPaysBlackjackOddsWhenAllowed(t *testing.T) {
	rs := rules.Default() // NaturalBlackjackSplits: true
	player := hand.Hand{card.Ace, card.Ten}
	dealer := hand.Hand{card.Ten, card.Nine, card.Five}
	got := Evaluate(player, dealer, true, rs)
	if got != 1.5 {
		t.Errorf("Evaluate = %v, want 1.5", got)
	}
}

func TestPlayerBust(t *testing.T) {
	player := hand.Hand{card.Ten, card.Ten, card.Five}
	dealer := hand.Hand{card.Ten, card.Six}
	got := Evaluate(player, dealer, false, rules.Default())
	if got != -1 {
		t.Errorf("Evaluate = %v, want -1", got)
	}
}

func TestDealerBust(t *testing.T) {
	player := hand.Hand{card.Ten, card.Six}
	dealer := hand.Hand{card.Ten, card.Six, card.Six}
	got := Evaluate(player, dealer, false, rules.Default())
	if got != 1 {
		t.Errorf("Evaluate = %v, want 1", got)
	}
}

func TestCompareScores(t *testing.T) {
	player := hand.Hand{card.Ten, card.Nine}
	dealer := hand.Hand{card.Ten, card.Eight}
	if got := Evaluate(player, dealer, false, rules.Default()); got != 1 {
		t.Errorf("Evaluate = %v, want 1", got)
	}

	dealer = hand.Hand{card.Ten, card.Nine}
	if got := Evaluate(player, dealer, false, rules.Default()); got != 0 {
		t.Errorf("Evaluate (push) = %v, want 0", got)
	}

	dealer = hand.Hand{card.Ace, card.Ten}
	if got := Evaluate(player, dealer, false, rules.Default()); got != -1 {
		t.Errorf("Evaluate = %v, want -1", got)
	}
}
