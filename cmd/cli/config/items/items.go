package items

import (
	"context"

	"github.com/lucax88x/ordklocka/cmd/cli/config/args"
	"github.com/lucax88x/ordklocka/internal/phrase"
	"github.com/lucax88x/ordklocka/internal/sketchybar"
)

type Batches = [][]string

type OrdklockaItem interface {
	Init(ctx context.Context, position sketchybar.Position, batches Batches) (Batches, error)
	Render(batches Batches, p phrase.Phrase) Batches
	Handles(args *args.In) bool
}

func s(args ...string) []string {
	return args
}

func m(args ...[]string) []string {
	var merged []string
	for _, a := range args {
		merged = append(merged, a...)
	}
	return merged
}

func batch(batches Batches, args []string) Batches {
	return append(batches, args)
}

func pointer(i int) *int {
	return &i
}

// Flatten joins batches into the arguments of a single sketchybar call.
func Flatten(batches Batches) []string {
	return m(batches...)
}
