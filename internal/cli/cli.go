// Package cli wires the module's subcommands together with cobra, the
// same command-tree shape ocpd's root command uses: a root *cobra.Command
// carrying persistent flags, with each subcommand registered via
// AddCommand and owning only the flags specific to it.
package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"blackjackev/internal/bench"
	"blackjackev/internal/bjlog"
	"blackjackev/internal/card"
	"blackjackev/internal/hand"
	"blackjackev/internal/rules"
	"blackjackev/internal/stats"
	"blackjackev/internal/strategy"
	"blackjackev/internal/trainer"
	"blackjackev/internal/tui"
	"blackjackev/internal/ui"
)

// Execute builds the root command and runs it against os.Args. It is the
// entire body of main().
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var decks int
	var vegas bool
	var verbose bool

	root := &cobra.Command{
		Use:           "blackjackev",
		Short:         "Exact expected-value engine and trainer for blackjack basic strategy",
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				bjlog.SetLevel(log.DebugLevel)
			}
			if decks < 1 || decks > 8 {
				return fmt.Errorf("decks must be between 1 and 8, got %d", decks)
			}
			return nil
		},
	}

	root.PersistentFlags().IntVar(&decks, "decks", 6, "number of decks in the shoe")
	root.PersistentFlags().BoolVar(&vegas, "vegas6to5", false, "use 6:5 blackjack payout and dealer hits soft 17")

	rulesFor := func() rules.RuleSet {
		if vegas {
			return rules.Vegas6to5()
		}
		return rules.Default()
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newEvalCmd(&decks, rulesFor))
	root.AddCommand(newTableCmd(&decks, rulesFor))
	root.AddCommand(newBenchCmd(&decks, rulesFor))
	root.AddCommand(newDrillCmd(&decks, rulesFor))

	return root
}

// parseHand parses a comma-separated hand like "10,10" or "A,9" into pip
// values (ace as 11), the same vocabulary strategy.Advisor.Evaluate takes.
func parseHand(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	cards := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.ToUpper(p))
		if p == "A" {
			cards = append(cards, 11)
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil || v < 2 || v > 10 {
			return nil, fmt.Errorf("invalid card %q", p)
		}
		cards = append(cards, v)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("hand must have at least one card")
	}
	return cards, nil
}

func parseDealerCard(s string) (int, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "A" {
		return 11, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 2 || v > 11 {
		return 0, fmt.Errorf("invalid dealer card %q", s)
	}
	return v, nil
}

func newEvalCmd(decks *int, rulesFor func() rules.RuleSet) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <player-cards> <dealer-card>",
		Short: "Print the exact EV of every action for one scenario",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerCards, err := parseHand(args[0])
			if err != nil {
				return err
			}
			dealerCard, err := parseDealerCard(args[1])
			if err != nil {
				return err
			}

			advisor := strategy.New(*decks, rulesFor())
			decision := advisor.Evaluate(playerCards, dealerCard)
			ui.DisplayDecision(playerCards, dealerCard, decision)
			return nil
		},
	}
}

func newTableCmd(decks *int, rulesFor func() rules.RuleSet) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Interactively explore EVs across every player total and dealer card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(*decks, rulesFor())
		},
	}
}

func newBenchCmd(decks *int, rulesFor func() rules.RuleSet) *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Price a standard grid of scenarios in parallel and report how many failed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := standardGrid()
			results, err := bench.Run(context.Background(), scenarios, *decks, rulesFor())
			if err != nil {
				return err
			}

			var errCount int
			for _, r := range results {
				if r.Err != nil {
					errCount++
				}
			}
			fmt.Printf("priced %d scenarios across %d workers (%d errors)\n",
				len(results), bench.Workers(), errCount)
			return nil
		},
	}
}

func newDrillCmd(decks *int, rulesFor func() rules.RuleSet) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "drill",
		Short: "Run an interactive strategy training session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			statistics := stats.New(rulesFor())

			if mode != "" {
				session := sessionFor(mode)
				if session == nil {
					return fmt.Errorf("invalid session type %q (want random, dealer, hand, absolute)", mode)
				}
				trainer.RunSession(session, statistics, *decks, rulesFor())
				return nil
			}

			for {
				choice, ok := ui.DisplayMenu()
				if !ok {
					fmt.Println("Invalid choice. Please enter a number 1-6.")
					continue
				}
				switch choice {
				case 1:
					trainer.RunSession(trainer.NewRandomTrainingSession(), statistics, *decks, rulesFor())
				case 2:
					trainer.RunSession(trainer.NewDealerGroupTrainingSession(), statistics, *decks, rulesFor())
				case 3:
					trainer.RunSession(trainer.NewHandTypeTrainingSession(), statistics, *decks, rulesFor())
				case 4:
					trainer.RunSession(trainer.NewAbsoluteTrainingSession(), statistics, *decks, rulesFor())
				case 5:
					statistics.DisplayProgress()
				case 6:
					fmt.Println("Thanks for practicing! Good luck at the tables!")
					return nil
				default:
					fmt.Println("Invalid choice. Please enter a number 1-6.")
				}
			}
		},
	}

	cmd.Flags().StringVar(&mode, "session", "", "session type: random, dealer, hand, absolute (interactive menu if omitted)")
	return cmd
}

func sessionFor(mode string) trainer.TrainingSession {
	switch mode {
	case "random":
		return trainer.NewRandomTrainingSession()
	case "dealer":
		return trainer.NewDealerGroupTrainingSession()
	case "hand":
		return trainer.NewHandTypeTrainingSession()
	case "absolute":
		return trainer.NewAbsoluteTrainingSession()
	default:
		return nil
	}
}

// standardGrid builds every hard total, soft total, and pair against
// every dealer upcard, the same coverage the training sessions draw
// from, as a fixed benchmarking workload.
func standardGrid() []bench.Scenario {
	var scenarios []bench.Scenario
	dealerCards := []card.Rank{card.Two, card.Three, card.Four, card.Five, card.Six,
		card.Seven, card.Eight, card.Nine, card.Ten, card.Ace}

	for _, d := range dealerCards {
		dealer := hand.Hand{d}

		for total := 5; total <= 20; total++ {
			scenarios = append(scenarios, bench.Scenario{Player: hardHand(total), Dealer: dealer})
		}
		for other := card.Two; other <= card.Nine; other++ {
			scenarios = append(scenarios, bench.Scenario{Player: hand.Hand{card.Ace, other}, Dealer: dealer})
		}
		for pair := card.Two; pair <= card.Ten; pair++ {
			scenarios = append(scenarios, bench.Scenario{Player: hand.Hand{pair, pair}, Dealer: dealer})
		}
		scenarios = append(scenarios, bench.Scenario{Player: hand.Hand{card.Ace, card.Ace}, Dealer: dealer})
	}
	return scenarios
}

// hardHand builds an ace-free two-card hand summing to total, for
// benchmark grid coverage only.
func hardHand(total int) hand.Hand {
	for first := card.Two; first <= card.Ten; first++ {
		secondPip := total - int(first)
		if secondPip < 2 || secondPip > 10 {
			continue
		}
		return hand.Hand{first, card.Rank(secondPip)}
	}
	return hand.Hand{card.Ten, card.Rank(total - 10)}
}
