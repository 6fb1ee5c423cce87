package main

import (
	"os"

	"github.com/arthur-debert/deckout/cmd/deckout"
	"github.com/arthur-debert/deckout/pkg/output/builtin"
)

func main() {
	// Formats are registered explicitly, in a fixed order, before any
	// command runs
	reg := builtin.NewRegistry()
	os.Exit(deckout.Execute(reg))
}
