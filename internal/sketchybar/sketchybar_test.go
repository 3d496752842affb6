package sketchybar_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/lucax88x/ordklocka/internal/sketchybar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	name string
	args []string
	err  error
}

func (r *recordingRunner) Run(_ context.Context, name string, arg ...string) (string, error) {
	r.name = name
	r.args = arg
	return "", r.err
}

func TestAPIRunsSketchybar(t *testing.T) {
	runner := &recordingRunner{}
	api := sketchybar.NewAPI(slog.New(slog.NewTextHandler(io.Discard, nil)), runner)

	err := api.Run(context.Background(), []string{"--set", "ordklocka.hour", "label=fem"})

	require.NoError(t, err)
	assert.Equal(t, "sketchybar", runner.name)
	assert.Equal(t, []string{"--set", "ordklocka.hour", "label=fem"}, runner.args)
}

func TestAPIWrapsErrors(t *testing.T) {
	runner := &recordingRunner{err: errors.New("not installed")}
	api := sketchybar.NewAPI(slog.New(slog.NewTextHandler(io.Discard, nil)), runner)

	err := api.Run(context.Background(), []string{"--bar"})

	assert.ErrorContains(t, err, "not installed")
}

func TestAPISkipsEmptyBatch(t *testing.T) {
	runner := &recordingRunner{}
	api := sketchybar.NewAPI(slog.New(slog.NewTextHandler(io.Discard, nil)), runner)

	require.NoError(t, api.Run(context.Background(), nil))
	assert.Empty(t, runner.name)
}
