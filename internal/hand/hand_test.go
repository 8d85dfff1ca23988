package hand

import (
	"testing"

	"blackjackev/internal/card"
)

func TestScoreHardTotals(t *testing.T) {
	cases := []struct {
		hand Hand
		want int
	}{
		{Hand{card.Ten, card.Six}, 16},
		{Hand{card.Seven, card.Seven, card.Seven}, 21},
		{Hand{card.Ten, card.Ten, card.Ten}, 30},
		{Hand{}, 0},
	}
	for _, c := range cases {
		if got := c.hand.Score(); got != c.want {
			t.Errorf("Score(%v) = %d, want %d", c.hand, got, c.want)
		}
	}
}

func TestScoreSoftPromotion(t *testing.T) {
	cases := []struct {
		hand Hand
		want int
	}{
		{Hand{card.Ace, card.Ten}, 21},
		{Hand{card.Ace, card.Four, card.Six}, 21},
		{Hand{card.Ace, card.Ace}, 12},
		{Hand{card.Ace, card.Ace, card.Nine}, 21},
		{Hand{card.Ace, card.Nine, card.Five}, 15},
	}
	for _, c := range cases {
		if got := c.hand.Score(); got != c.want {
			t.Errorf("Score(%v) = %d, want %d", c.hand, got, c.want)
		}
	}
}

func TestIsSoft(t *testing.T) {
	if !(Hand{card.Ace, card.Six}).IsSoft() {
		t.Error("A,6 should be soft")
	}
	if !(Hand{card.Ace, card.Ace, card.Nine}).IsSoft() {
		t.Error("A,A,9 is a soft 21: one ace promotes to 11, the other stays at 1")
	}
	if (Hand{card.Ten, card.Six}).IsSoft() {
		t.Error("10,6 should not be soft")
	}
}

func TestScoreLiveInvariant(t *testing.T) {
	for total := 4; total <= 30; total++ {
		h := handWithScore(t, total)
		if h.Score() <= 21 && h.IsBust() {
			t.Errorf("hand %v scores %d <=21 but reports bust", h, h.Score())
		}
	}
}

func TestIsSoftImpliesAtLeast12(t *testing.T) {
	softHands := []Hand{
		{card.Ace, card.Two},
		{card.Ace, card.Nine},
		{card.Ace, card.Four, card.Six},
	}
	for _, h := range softHands {
		if !h.IsSoft() {
			continue
		}
		if h.Score() < 12 {
			t.Errorf("soft hand %v scores %d, want >= 12", h, h.Score())
		}
	}
}

func TestCanSplit(t *testing.T) {
	cases := []struct {
		hand Hand
		want bool
	}{
		{Hand{card.Seven, card.Seven}, true},
		{Hand{card.Ten, card.Ten}, true},
		{Hand{card.Ten, card.Ace}, false},
		{Hand{card.Seven}, false},
		{Hand{card.Seven, card.Seven, card.Seven}, false},
	}
	for _, c := range cases {
		if got := c.hand.CanSplit(); got != c.want {
			t.Errorf("CanSplit(%v) = %v, want %v", c.hand, got, c.want)
		}
	}
}

func TestIsNatural(t *testing.T) {
	if !(Hand{card.Ace, card.Ten}).IsNatural() {
		t.Error("A,T should be natural")
	}
	if (Hand{card.Seven, card.Seven, card.Seven}).IsNatural() {
		t.Error("three-card 21 should not be natural")
	}
}

func TestCloneIndependence(t *testing.T) {
	original := Hand{card.Ten, card.Six}
	clone := original.Clone()
	clone[0] = card.Two
	if original[0] != card.Ten {
		t.Error("mutating the clone should not affect the original")
	}
}

func TestAppendDoesNotMutateReceiver(t *testing.T) {
	base := make(Hand, 2, 4)
	base[0], base[1] = card.Ten, card.Six
	extended := base.Append(card.Five)
	if len(base) != 2 {
		t.Fatalf("base length changed to %d, want 2", len(base))
	}
	if len(extended) != 3 {
		t.Fatalf("extended length = %d, want 3", len(extended))
	}
	extended[2] = card.Nine
	if cap(base) > len(base) {
		// Append must not have written into base's spare capacity.
		probe := base[:3]
		if probe[2] == card.Nine {
			t.Error("Append wrote into base's backing array")
		}
	}
}

// handWithScore builds an ace-free hand whose pip sum is total, except that
// a remainder of 1 (or less) is raised to a 2 card, so 11 and 21 come out
// one higher. With no aces Score() cannot promote anything and the result
// is unambiguous.
func handWithScore(t *testing.T, total int) Hand {
	t.Helper()
	var h Hand
	remaining := total
	for remaining > 10 {
		h = append(h, card.Ten)
		remaining -= 10
	}
	if remaining < 2 {
		remaining = 2
	}
	h = append(h, card.Rank(remaining))
	return h
}
