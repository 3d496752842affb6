package server_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/lucax88x/ordklocka/cmd/cli/config"
	"github.com/lucax88x/ordklocka/internal/clock"
	"github.com/lucax88x/ordklocka/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSketchybar struct {
	mu    sync.Mutex
	calls [][]string
}

func (f *fakeSketchybar) Run(_ context.Context, args []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, args)
	return nil
}

func (f *fakeSketchybar) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.calls)
}

type fakeListener struct {
	messages []string
}

func (f fakeListener) Listen(ctx context.Context, _ string, ch chan<- string) error {
	for _, msg := range f.messages {
		select {
		case ch <- msg:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	<-ctx.Done()
	return ctx.Err()
}

func newServer(messages ...string) (*server.FifoServer, *fakeSketchybar) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := &fakeSketchybar{}
	cfg := config.NewConfig(logger, api, config.Default(), "")
	fixed := clock.NewFixed(time.Date(2024, time.May, 1, 16, 45, 0, 0, time.UTC))

	return server.NewFifoServer(logger, cfg, fakeListener{messages}, fixed, "/tmp/unused"), api
}

func TestHandle(t *testing.T) {
	srv, api := newServer()
	ctx := context.Background()

	require.NoError(t, srv.Handle(ctx, "init"))
	assert.Equal(t, 2, api.count())

	require.NoError(t, srv.Handle(ctx, "refresh"))
	assert.Equal(t, 3, api.count())

	require.NoError(t, srv.Handle(ctx, `update args: {"name":"ordklocka.link","event":"forced"} info:`))
	assert.Equal(t, 4, api.count())

	require.NoError(t, srv.Handle(ctx, "something else"))
	assert.Equal(t, 4, api.count())

	assert.Error(t, srv.Handle(ctx, "update args: {broken"))
}

func TestStartDispatchesMessages(t *testing.T) {
	srv, api := newServer("init", "refresh")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Start(ctx)
	}()

	assert.Eventually(t, func() bool { return api.count() == 3 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
