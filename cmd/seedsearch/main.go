// Command seedsearch searches Gen 5 WonderCard seeds.
//
//	seedsearch estimate -c criteria.yaml
//	seedsearch search -c criteria.yaml --workers 8 > results.jsonl
//
// Matching frames are written to stdout as JSON lines; logs and the progress
// line go to stderr. Runtime settings may also be given through SEEDSEARCH_*
// environment variables; flags take precedence.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/seedsearch/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		config.Exitf("seedsearch: %v", err)
	}
}
