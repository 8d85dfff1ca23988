// Package tui implements the interactive EV explorer behind the `table`
// subcommand: arrow keys walk the player's total and the dealer's upcard,
// and the engine's four action EVs for that state are recomputed and
// rendered on every move. It follows the standard Bubble Tea shape
// (Model/Init/Update/View) and leans on bubbles/key for keybindings and
// lipgloss for layout, the same component families wired into the rest
// of the module's dependency stack.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"blackjackev/internal/rules"
	"blackjackev/internal/strategy"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	bestStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type keyMap struct {
	Up, Down, Left, Right, PairToggle, Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "raise total")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "lower total")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "weaker dealer card")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "stronger dealer card")),
		PairToggle: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "toggle pair")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type model struct {
	advisor     *strategy.Advisor
	keys        keyMap
	playerTotal int // 5..20 hard, or 2..11 pair value when pairMode
	dealerCard  int // 2..11
	pairMode    bool
}

// Run starts the table explorer in the terminal, blocking until the user
// quits.
func Run(decks int, rs rules.RuleSet) error {
	m := model{
		advisor:     strategy.New(decks, rs),
		keys:        defaultKeyMap(),
		playerTotal: 16,
		dealerCard:  10,
	}
	_, err := tea.NewProgram(m).Run()
	return err
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		m.playerTotal = clamp(m.playerTotal+1, m.minTotal(), m.maxTotal())
	case key.Matches(keyMsg, m.keys.Down):
		m.playerTotal = clamp(m.playerTotal-1, m.minTotal(), m.maxTotal())
	case key.Matches(keyMsg, m.keys.Left):
		m.dealerCard = clamp(m.dealerCard-1, 2, 11)
	case key.Matches(keyMsg, m.keys.Right):
		m.dealerCard = clamp(m.dealerCard+1, 2, 11)
	case key.Matches(keyMsg, m.keys.PairToggle):
		m.pairMode = !m.pairMode
		m.playerTotal = clamp(m.playerTotal, m.minTotal(), m.maxTotal())
	}
	return m, nil
}

func (m model) minTotal() int {
	if m.pairMode {
		return 2
	}
	return 5
}

func (m model) maxTotal() int {
	if m.pairMode {
		return 11
	}
	return 20
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m model) playerCards() []int {
	if m.pairMode {
		return []int{m.playerTotal, m.playerTotal}
	}
	return hardCardsSumming(m.playerTotal)
}

// hardCardsSumming picks the ace-free two-card combination with the lowest
// first card that sums to total (20 comes out as a pair of tens). These
// are the cards the advisor evaluates and removes from its fresh shoe.
func hardCardsSumming(total int) []int {
	for first := 2; first <= 10; first++ {
		second := total - first
		if second >= 2 && second <= 10 {
			return []int{first, second}
		}
	}
	return []int{total}
}

func (m model) View() string {
	playerCards := m.playerCards()
	decision := m.advisor.Evaluate(playerCards, m.dealerCard)

	var b string
	b += headerStyle.Render("blackjack EV table") + "\n\n"
	b += fmt.Sprintf("dealer shows: %s\n", strategy.CardToString(m.dealerCard))
	b += fmt.Sprintf("player hand:  %s\n\n", renderCards(playerCards))

	b += row("stand", decision.StandEV, decision.Action == 'S')
	b += row("hit", decision.HitEV, decision.Action == 'H')
	b += row("double", decision.DoubleEV, decision.Action == 'D')
	if decision.Splittable {
		b += row("split", decision.SplitEV, decision.Action == 'Y')
	}

	b += "\n" + dimStyle.Render("↑/↓ total · ←/→ dealer card · p pair · q quit")
	return b
}

func row(label string, ev float64, best bool) string {
	line := fmt.Sprintf("  %-7s %+.4f\n", label, ev)
	if best {
		return bestStyle.Render(line)
	}
	return line
}

func renderCards(cards []int) string {
	s := ""
	for i, c := range cards {
		if i > 0 {
			s += ", "
		}
		s += strategy.CardToString(c)
	}
	return s
}
