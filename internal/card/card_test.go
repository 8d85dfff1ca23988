package card

import "testing"

func TestRankString(t *testing.T) {
	cases := map[Rank]string{
		Ace: "A",
		Two: "2",
		Ten: "T",
	}
	for rank, want := range cases {
		if got := rank.String(); got != want {
			t.Errorf("Rank(%d).String() = %q, want %q", int(rank), got, want)
		}
	}
}

func TestRankValid(t *testing.T) {
	if !Ace.Valid() || !Ten.Valid() {
		t.Error("Ace and Ten should be valid ranks")
	}
	if Rank(0).Valid() || Rank(11).Valid() {
		t.Error("ranks outside 1..10 should be invalid")
	}
}

func TestRankPip(t *testing.T) {
	if Ace.Pip() != 1 {
		t.Errorf("Ace.Pip() = %d, want 1", Ace.Pip())
	}
	if Ten.Pip() != 10 {
		t.Errorf("Ten.Pip() = %d, want 10", Ten.Pip())
	}
	if Seven.Pip() != 7 {
		t.Errorf("Seven.Pip() = %d, want 7", Seven.Pip())
	}
}
