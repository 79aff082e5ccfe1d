// Package main provides the CLI entrypoint for emoji-generator.
//
// emoji-generator rebuilds the emoji assets of a Rime configuration:
//   - Fetches the upstream emoji map and merges the local overrides into it
//   - Applies preferred emoji orderings per word
//   - Writes the OpenCC emoji lexicon
//   - Adds emoji tips for words that have no hand-written tip
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
