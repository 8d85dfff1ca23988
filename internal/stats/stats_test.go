package stats

import (
	"testing"

	"blackjackev/internal/rules"
	"blackjackev/internal/strategy"
)

func TestInitialState(t *testing.T) {
	s := New(rules.Default())

	if accuracy := s.GetSessionAccuracy(); accuracy != 0.0 {
		t.Errorf("Initial session accuracy should be 0.0, got %f", accuracy)
	}

	for _, category := range []string{"hard", "soft", "pair"} {
		if accuracy := s.GetCategoryAccuracy(category); accuracy != 0.0 {
			t.Errorf("Initial %s accuracy should be 0.0, got %f", category, accuracy)
		}
		if lost := s.GetCategoryEVLost(category); lost != 0.0 {
			t.Errorf("Initial %s EV lost should be 0.0, got %f", category, lost)
		}
	}

	for _, strength := range []string{"weak", "medium", "strong"} {
		if accuracy := s.GetDealerStrengthAccuracy(strength); accuracy != 0.0 {
			t.Errorf("Initial %s accuracy should be 0.0, got %f", strength, accuracy)
		}
	}

	if got := s.AverageEVLost(); got != 0.0 {
		t.Errorf("Initial average EV lost should be 0.0, got %f", got)
	}
}

func TestRecordCorrectAttempt(t *testing.T) {
	s := New(rules.Default())

	s.RecordAttempt(strategy.HandTypeHard.String(), "weak", true, 0)

	if accuracy := s.GetSessionAccuracy(); accuracy != 100.0 {
		t.Errorf("Session accuracy after 1 correct should be 100.0, got %f", accuracy)
	}
	if accuracy := s.GetCategoryAccuracy("hard"); accuracy != 100.0 {
		t.Errorf("Hard accuracy after 1 correct should be 100.0, got %f", accuracy)
	}
	if accuracy := s.GetDealerStrengthAccuracy("weak"); accuracy != 100.0 {
		t.Errorf("Weak accuracy after 1 correct should be 100.0, got %f", accuracy)
	}
	if got := s.AverageEVLost(); got != 0.0 {
		t.Errorf("A correct attempt should not accumulate EV lost, got %f", got)
	}
}

func TestRecordIncorrectAttemptAccumulatesEVLost(t *testing.T) {
	s := New(rules.Default())

	s.RecordAttempt(strategy.HandTypeSoft.String(), "medium", false, 0.4)

	if accuracy := s.GetSessionAccuracy(); accuracy != 0.0 {
		t.Errorf("Session accuracy after 1 incorrect should be 0.0, got %f", accuracy)
	}
	if accuracy := s.GetCategoryAccuracy("soft"); accuracy != 0.0 {
		t.Errorf("Soft accuracy after 1 incorrect should be 0.0, got %f", accuracy)
	}
	if lost := s.GetCategoryEVLost("soft"); lost != 0.4 {
		t.Errorf("Soft EV lost should be 0.4, got %f", lost)
	}
	if got := s.AverageEVLost(); got != 0.4 {
		t.Errorf("Average EV lost should be 0.4, got %f", got)
	}
}

func TestMultipleAttempts(t *testing.T) {
	s := New(rules.Default())

	s.RecordAttempt(strategy.HandTypeHard.String(), "weak", true, 0)    // 1/1 correct
	s.RecordAttempt(strategy.HandTypeHard.String(), "weak", false, 0.2) // 1/2 correct
	s.RecordAttempt(strategy.HandTypeSoft.String(), "strong", true, 0)  // 2/3 correct
	s.RecordAttempt(strategy.HandTypePair.String(), "medium", true, 0)  // 3/4 correct

	if accuracy := s.GetSessionAccuracy(); accuracy != 75.0 {
		t.Errorf("Session accuracy should be 75.0, got %f", accuracy)
	}
	if accuracy := s.GetCategoryAccuracy("hard"); accuracy != 50.0 {
		t.Errorf("Hard accuracy should be 50.0, got %f", accuracy)
	}
	if accuracy := s.GetCategoryAccuracy("soft"); accuracy != 100.0 {
		t.Errorf("Soft accuracy should be 100.0, got %f", accuracy)
	}
	if accuracy := s.GetCategoryAccuracy("pair"); accuracy != 100.0 {
		t.Errorf("Pair accuracy should be 100.0, got %f", accuracy)
	}
	if lost := s.GetCategoryEVLost("hard"); lost != 0.1 {
		t.Errorf("Hard EV lost should average 0.1 over 2 attempts, got %f", lost)
	}
}

func TestAccuracyCalculations(t *testing.T) {
	s := New(rules.Default())

	s.RecordAttempt(strategy.HandTypeHard.String(), "weak", true, 0)
	s.RecordAttempt(strategy.HandTypeHard.String(), "weak", true, 0)
	s.RecordAttempt(strategy.HandTypeHard.String(), "weak", true, 0)
	s.RecordAttempt(strategy.HandTypeHard.String(), "weak", false, 0.3)

	if expected, accuracy := 75.0, s.GetCategoryAccuracy("hard"); accuracy != expected {
		t.Errorf("Hard accuracy should be %f, got %f", expected, accuracy)
	}

	s.RecordAttempt(strategy.HandTypeSoft.String(), "weak", false, 0.1)

	if expected, accuracy := 60.0, s.GetDealerStrengthAccuracy("weak"); accuracy != expected {
		t.Errorf("Weak dealer accuracy should be %f, got %f", expected, accuracy)
	}
}

func TestDealerStrengthClassification(t *testing.T) {
	s := New(rules.Default())

	for _, card := range []int{4, 5, 6} {
		if strength := s.GetDealerStrength(card); strength != "weak" {
			t.Errorf("Card %d should be classified as weak, got %s", card, strength)
		}
	}
	for _, card := range []int{2, 3, 7, 8} {
		if strength := s.GetDealerStrength(card); strength != "medium" {
			t.Errorf("Card %d should be classified as medium, got %s", card, strength)
		}
	}
	for _, card := range []int{9, 10, 11} {
		if strength := s.GetDealerStrength(card); strength != "strong" {
			t.Errorf("Card %d should be classified as strong, got %s", card, strength)
		}
	}
}

func TestInvalidCategoriesDoNotCrash(t *testing.T) {
	s := New(rules.Default())

	if accuracy := s.GetCategoryAccuracy("invalid"); accuracy != 0.0 {
		t.Errorf("Invalid category should return 0.0, got %f", accuracy)
	}
	if accuracy := s.GetDealerStrengthAccuracy("invalid"); accuracy != 0.0 {
		t.Errorf("Invalid dealer strength should return 0.0, got %f", accuracy)
	}

	s.RecordAttempt(strategy.HandType(99).String(), "invalid", true, 0)

	if accuracy := s.GetSessionAccuracy(); accuracy != 100.0 {
		t.Errorf("Session accuracy should be 100.0 after 1 correct invalid attempt, got %f", accuracy)
	}
}

func TestResetSession(t *testing.T) {
	s := New(rules.Default())

	s.RecordAttempt(strategy.HandTypeHard.String(), "weak", true, 0)
	s.RecordAttempt(strategy.HandTypeSoft.String(), "strong", false, 0.5)
	s.RecordAttempt(strategy.HandTypePair.String(), "medium", true, 0)

	if accuracy := s.GetSessionAccuracy(); accuracy == 0.0 {
		t.Error("Should have non-zero accuracy before reset")
	}
	if lost := s.AverageEVLost(); lost == 0.0 {
		t.Error("Should have non-zero EV lost before reset")
	}

	s.ResetSession()

	if accuracy := s.GetSessionAccuracy(); accuracy != 0.0 {
		t.Errorf("Session accuracy should be 0.0 after reset, got %f", accuracy)
	}
	if lost := s.AverageEVLost(); lost != 0.0 {
		t.Errorf("Average EV lost should be 0.0 after reset, got %f", lost)
	}

	for _, category := range []string{"hard", "soft", "pair"} {
		if accuracy := s.GetCategoryAccuracy(category); accuracy != 0.0 {
			t.Errorf("%s accuracy should be 0.0 after reset, got %f", category, accuracy)
		}
		if lost := s.GetCategoryEVLost(category); lost != 0.0 {
			t.Errorf("%s EV lost should be 0.0 after reset, got %f", category, lost)
		}
	}

	for _, strength := range []string{"weak", "medium", "strong"} {
		if accuracy := s.GetDealerStrengthAccuracy(strength); accuracy != 0.0 {
			t.Errorf("%s accuracy should be 0.0 after reset, got %f", strength, accuracy)
		}
	}
}
