// Command blackjackev is an exact expected-value engine and basic
// strategy trainer for blackjack.
//
// Usage:
//
//	blackjackev eval <player-cards> <dealer-card>
//	blackjackev table
//	blackjackev bench
//	blackjackev drill [--session random|dealer|hand|absolute]
//
// Run `blackjackev --help` for the full flag set.
package main

import (
	"fmt"
	"os"

	"blackjackev/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
