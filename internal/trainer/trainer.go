// Package trainer provides training session types for blackjack strategy practice.
//
// This package defines the TrainingSession interface and implements concrete
// training session types that focus on different aspects of blackjack strategy:
// - RandomTrainingSession: Mixed practice with all hand types and dealer cards
// - DealerGroupTrainingSession: Focus on specific dealer strength groups
// - HandTypeTrainingSession: Focus on specific hand types (hard/soft/pairs)
// - AbsoluteTrainingSession: Practice absolute rules (always/never scenarios)
//
// Every session draws its scenarios from a real, depleting shoe.Shoe that
// RunSession owns and reshuffles on penetration, rather than an infinite
// supply of cards — the same shoe.Shoe value internal/bench prices
// scenarios against.
package trainer

import (
	"fmt"
	"math/rand"
	"time"

	"blackjackev/internal/bjlog"
	"blackjackev/internal/card"
	"blackjackev/internal/hand"
	"blackjackev/internal/rules"
	"blackjackev/internal/shoe"
	"blackjackev/internal/stats"
	"blackjackev/internal/strategy"
	"blackjackev/internal/ui"
)

// TrainingSession interface defines the contract for all training session types.
type TrainingSession interface {
	// GetModeName returns the mode name for display purposes.
	GetModeName() string
	// GetMaxQuestions returns the maximum number of questions for this session type.
	GetMaxQuestions() int
	// GenerateScenario draws a scenario from s, returning the hand type,
	// the player's hand, the dealer's upcard, and the shoe with every
	// dealt card removed.
	GenerateScenario(s shoe.Shoe) (strategy.HandType, hand.Hand, hand.Hand, shoe.Shoe)
	// SetupSession sets up the session. Returns true if setup successful, false if user cancelled.
	SetupSession() bool
}

// reshuffleFloor is the fraction of a shoe's starting size below which
// RunSession reshuffles, mirroring the penetration a table would cut the
// shoe at instead of dealing it down to nothing.
const reshuffleFloor = 0.25

// BaseTrainer provides common functionality for all training sessions.
type BaseTrainer struct {
	rng *rand.Rand
}

// NewBaseTrainer creates a new base trainer with random number generator.
func NewBaseTrainer() *BaseTrainer {
	return &BaseTrainer{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// randomHandOfType draws a random hand of the given type from s, returning
// the hand and the shoe with its cards removed.
func (bt *BaseTrainer) randomHandOfType(handType strategy.HandType, s shoe.Shoe) (hand.Hand, shoe.Shoe) {
	switch handType {
	case strategy.HandTypePair:
		ranks := []card.Rank{card.Two, card.Three, card.Four, card.Five, card.Six,
			card.Seven, card.Eight, card.Nine, card.Ten, card.Ace}
		r := ranks[bt.rng.Intn(len(ranks))]
		return hand.Hand{r, r}, s.Drawn(r).Drawn(r)
	case strategy.HandTypeSoft:
		other := card.Rank(bt.rng.Intn(8) + 2) // 2-9
		return hand.Hand{card.Ace, other}, s.Drawn(card.Ace).Drawn(other)
	default: // HandTypeHard
		total := bt.rng.Intn(16) + 5 // 5-20
		return bt.hardHand(total, s)
	}
}

// hardHand builds an ace-free hand summing to total, drawing each chosen
// rank from s. Shoe.Drawn clamps at zero rather than going negative, so a
// rank already exhausted from s is simply a no-op removal instead of a
// panic — an acceptable rarity against a multi-deck shoe.
func (bt *BaseTrainer) hardHand(total int, s shoe.Shoe) (hand.Hand, shoe.Shoe) {
	if total <= 10 {
		r := card.Rank(total)
		return hand.Hand{r}, s.Drawn(r)
	}

	lo, hi := max(2, total-10), min(10, total-2)
	first := card.Rank(bt.rng.Intn(hi-lo+1) + lo)
	second := card.Rank(total - int(first))
	return hand.Hand{first, second}, s.Drawn(first).Drawn(second)
}

// CheckAnswer checks if user's action matches the correct action.
func CheckAnswer(userAction, correctAction rune) bool {
	return strategy.NormalizeAction(userAction) == correctAction
}

// RunSession runs the main training session loop against the engine-backed
// advisor for the given deck count and rule set, drawing every scenario
// from a single shoe that depletes across the session and reshuffles once
// it falls below reshuffleFloor.
func RunSession(session TrainingSession, statistics *stats.Statistics, decks int, rs rules.RuleSet) {
	ui.DisplaySessionHeader(session.GetModeName())

	if !session.SetupSession() {
		return // User cancelled setup
	}

	advisor := strategy.New(decks, rs)
	liveShoe := shoe.NewDecks(decks)
	floor := int(float64(decks*52) * reshuffleFloor)

	bjlog.Infof("training session started mode=%s decks=%d", session.GetModeName(), decks)
	var correctCount, totalCount, questionCount int

	for questionCount < session.GetMaxQuestions() {
		if liveShoe.Sum() < floor {
			liveShoe = shoe.NewDecks(decks)
			ui.DisplayShoeReshuffle(decks)
			bjlog.Debugf("shoe reshuffled after falling below %d cards", floor)
		}

		handType, player, dealer, remaining := session.GenerateScenario(liveShoe)
		liveShoe = remaining
		playerCards := strategy.PipsOf(player)
		dealerCard := strategy.PipsOf(dealer)[0]
		playerTotal := player.Score()

		ui.DisplayHand(playerCards, dealerCard, handType.String(), playerTotal)

		userAction, quit := ui.GetUserAction()
		if quit {
			break
		}

		decision := advisor.EvaluateInShoe(liveShoe, playerCards, dealerCard)
		correct := CheckAnswer(userAction, decision.Action)
		evLost := evGivenUp(decision, userAction, correct)
		explanationTotal := playerTotal
		if handType == strategy.HandTypePair {
			explanationTotal = playerCards[0]
		}
		explanation := advisor.GetExplanation(handType, explanationTotal, dealerCard)

		quitRequested := ui.DisplayFeedback(correct, userAction, decision.Action, explanation, evLost)

		dealerStrength := statistics.GetDealerStrength(dealerCard)
		statistics.RecordAttempt(handType.String(), dealerStrength, correct, evLost)

		questionCount++
		if correct {
			correctCount++
		}
		totalCount++

		if quitRequested {
			break
		}
	}

	if totalCount > 0 {
		accuracy := (float64(correctCount) / float64(totalCount)) * 100.0
		fmt.Printf("\nSession complete! Final score: %d/%d (%.1f%%)\n",
			correctCount, totalCount, accuracy)
		bjlog.Infof("training session ended mode=%s score=%d/%d", session.GetModeName(), correctCount, totalCount)
	}
}

// evGivenUp is the EV the player gave up by answering userAction instead of
// the engine's recommended action, or 0 if the answer was correct. An
// unrecognized action is scored as losing the whole wager (an EV of -1).
func evGivenUp(decision strategy.Decision, userAction rune, correct bool) float64 {
	if correct {
		return 0
	}
	chosenEV, ok := decision.EVFor(strategy.NormalizeAction(userAction))
	if !ok {
		chosenEV = -1
	}
	lost := decision.BestEV() - chosenEV
	if lost < 0 {
		return 0
	}
	return lost
}

// RandomTrainingSession provides random practice with all hand types and dealer cards.
type RandomTrainingSession struct {
	*BaseTrainer
}

// NewRandomTrainingSession creates a new random training session.
func NewRandomTrainingSession() *RandomTrainingSession {
	return &RandomTrainingSession{
		BaseTrainer: NewBaseTrainer(),
	}
}

// GetModeName returns the mode name.
func (r *RandomTrainingSession) GetModeName() string {
	return "random"
}

// GetMaxQuestions returns the maximum number of questions.
func (r *RandomTrainingSession) GetMaxQuestions() int {
	return 50
}

// SetupSession sets up the session (no additional setup needed).
func (r *RandomTrainingSession) SetupSession() bool {
	return true
}

// GenerateScenario generates a random scenario.
func (r *RandomTrainingSession) GenerateScenario(s shoe.Shoe) (strategy.HandType, hand.Hand, hand.Hand, shoe.Shoe) {
	dealerRank, s := s.DrawRandom(r.rng)
	handTypes := []strategy.HandType{strategy.HandTypeHard, strategy.HandTypeSoft, strategy.HandTypePair}
	handType := handTypes[r.rng.Intn(len(handTypes))]
	player, s := r.randomHandOfType(handType, s)
	return handType, player, hand.Hand{dealerRank}, s
}

// DealerGroupTrainingSession focuses on specific dealer strength groups.
type DealerGroupTrainingSession struct {
	*BaseTrainer
	dealerGroup int
}

// NewDealerGroupTrainingSession creates a new dealer group training session.
func NewDealerGroupTrainingSession() *DealerGroupTrainingSession {
	return &DealerGroupTrainingSession{
		BaseTrainer: NewBaseTrainer(),
		dealerGroup: 0,
	}
}

// GetModeName returns the mode name.
func (d *DealerGroupTrainingSession) GetModeName() string {
	return "dealer_groups"
}

// GetMaxQuestions returns the maximum number of questions.
func (d *DealerGroupTrainingSession) GetMaxQuestions() int {
	return 50
}

// SetupSession sets up the session by asking user to choose dealer group.
func (d *DealerGroupTrainingSession) SetupSession() bool {
	choice, ok := ui.DisplayDealerGroups()
	if !ok {
		return false
	}
	d.dealerGroup = choice
	return true
}

var dealerGroupRanks = map[int][]card.Rank{
	1: {card.Four, card.Five, card.Six},               // Weak
	2: {card.Two, card.Three, card.Seven, card.Eight}, // Medium
	3: {card.Nine, card.Ten, card.Ace},                // Strong
}

// GenerateScenario generates a scenario with a dealer card drawn from the
// chosen strength group and depleted from s like any other card dealt.
func (d *DealerGroupTrainingSession) GenerateScenario(s shoe.Shoe) (strategy.HandType, hand.Hand, hand.Hand, shoe.Shoe) {
	candidates, ok := dealerGroupRanks[d.dealerGroup]
	if !ok {
		candidates = dealerGroupRanks[3]
	}
	dealerRank := candidates[d.rng.Intn(len(candidates))]
	s = s.Drawn(dealerRank)

	handTypes := []strategy.HandType{strategy.HandTypeHard, strategy.HandTypeSoft, strategy.HandTypePair}
	handType := handTypes[d.rng.Intn(len(handTypes))]
	player, s := d.randomHandOfType(handType, s)
	return handType, player, hand.Hand{dealerRank}, s
}

// HandTypeTrainingSession focuses on specific hand types.
type HandTypeTrainingSession struct {
	*BaseTrainer
	handTypeChoice int
}

// NewHandTypeTrainingSession creates a new hand type training session.
func NewHandTypeTrainingSession() *HandTypeTrainingSession {
	return &HandTypeTrainingSession{
		BaseTrainer:    NewBaseTrainer(),
		handTypeChoice: 0,
	}
}

// GetModeName returns the mode name.
func (h *HandTypeTrainingSession) GetModeName() string {
	return "hand_types"
}

// GetMaxQuestions returns the maximum number of questions.
func (h *HandTypeTrainingSession) GetMaxQuestions() int {
	return 50
}

// SetupSession sets up the session by asking user to choose hand type.
func (h *HandTypeTrainingSession) SetupSession() bool {
	choice, ok := ui.DisplayHandTypes()
	if !ok {
		return false
	}
	h.handTypeChoice = choice
	return true
}

// GenerateScenario generates a scenario with the chosen hand type.
func (h *HandTypeTrainingSession) GenerateScenario(s shoe.Shoe) (strategy.HandType, hand.Hand, hand.Hand, shoe.Shoe) {
	dealerRank, s := s.DrawRandom(h.rng)

	var handType strategy.HandType
	switch h.handTypeChoice {
	case 1:
		handType = strategy.HandTypeHard
	case 2:
		handType = strategy.HandTypeSoft
	default:
		handType = strategy.HandTypePair
	}

	player, s := h.randomHandOfType(handType, s)
	return handType, player, hand.Hand{dealerRank}, s
}

// AbsoluteTrainingSession focuses on absolute rules (always/never scenarios).
type AbsoluteTrainingSession struct {
	*BaseTrainer
}

// NewAbsoluteTrainingSession creates a new absolute training session.
func NewAbsoluteTrainingSession() *AbsoluteTrainingSession {
	return &AbsoluteTrainingSession{
		BaseTrainer: NewBaseTrainer(),
	}
}

// GetModeName returns the mode name.
func (a *AbsoluteTrainingSession) GetModeName() string {
	return "absolutes"
}

// GetMaxQuestions returns the maximum number of questions.
func (a *AbsoluteTrainingSession) GetMaxQuestions() int {
	return 20
}

// SetupSession sets up the session (no additional setup needed).
func (a *AbsoluteTrainingSession) SetupSession() bool {
	return true
}

var absoluteHands = []struct {
	handType strategy.HandType
	hand     hand.Hand
}{
	{strategy.HandTypePair, hand.Hand{card.Ace, card.Ace}},
	{strategy.HandTypePair, hand.Hand{card.Eight, card.Eight}},
	{strategy.HandTypePair, hand.Hand{card.Ten, card.Ten}},
	{strategy.HandTypePair, hand.Hand{card.Five, card.Five}},
	{strategy.HandTypeSoft, hand.Hand{card.Ace, card.Eight}}, // soft 19
	{strategy.HandTypeSoft, hand.Hand{card.Ace, card.Nine}},  // soft 20
}

// GenerateScenario draws one of the fixed always/never hands and a random
// dealer card, depleting both from s.
func (a *AbsoluteTrainingSession) GenerateScenario(s shoe.Shoe) (strategy.HandType, hand.Hand, hand.Hand, shoe.Shoe) {
	if a.rng.Intn(2) == 0 {
		choice := absoluteHands[a.rng.Intn(len(absoluteHands))]
		player := choice.hand.Clone()
		for _, r := range player {
			s = s.Drawn(r)
		}
		dealerRank, s := s.DrawRandom(a.rng)
		return choice.handType, player, hand.Hand{dealerRank}, s
	}

	total := a.rng.Intn(4) + 17 // hard 17-20, always stand
	player, s := a.hardHand(total, s)
	dealerRank, s := s.DrawRandom(a.rng)
	return strategy.HandTypeHard, player, hand.Hand{dealerRank}, s
}
