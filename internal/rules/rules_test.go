package rules

import "testing"

func TestDefaultMatchesCommonTableRules(t *testing.T) {
	rs := Default()
	if rs.BlackjackOdds != 1.5 {
		t.Errorf("Default BlackjackOdds = %v, want 1.5", rs.BlackjackOdds)
	}
	if rs.DealerHitsOnSoft17 {
		t.Error("Default should stand on soft 17")
	}
	if !rs.DealerPeeksFor21 {
		t.Error("Default should peek for 21")
	}
}

func TestVegas6to5Overrides(t *testing.T) {
	rs := Vegas6to5()
	if rs.BlackjackOdds != 1.2 {
		t.Errorf("Vegas6to5 BlackjackOdds = %v, want 1.2", rs.BlackjackOdds)
	}
	if !rs.DealerHitsOnSoft17 {
		t.Error("Vegas6to5 should hit on soft 17")
	}
	// Everything else should still match Default.
	rs.BlackjackOdds = 1.5
	rs.DealerHitsOnSoft17 = false
	if rs != Default() {
		t.Error("Vegas6to5 should only differ from Default in odds and soft-17 policy")
	}
}
