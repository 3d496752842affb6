package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/lucax88x/ordklocka/cmd/cli/config"
	"github.com/lucax88x/ordklocka/cmd/cli/config/args"
	"github.com/lucax88x/ordklocka/internal/clock"
	"github.com/lucax88x/ordklocka/internal/fifo"
)

const (
	MessageInit    = "init"
	MessageRefresh = "refresh"
)

type Listener interface {
	Listen(ctx context.Context, path string, ch chan<- string) error
}

type FifoServer struct {
	logger *slog.Logger
	config *config.Config
	fifo   Listener
	clock  clock.Clock
	path   string
}

func NewFifoServer(
	logger *slog.Logger,
	config *config.Config,
	fifo Listener,
	clock clock.Clock,
	path string,
) *FifoServer {
	return &FifoServer{
		logger,
		config,
		fifo,
		clock,
		path,
	}
}

var _ Listener = (*fifo.Reader)(nil)

// Start handles messages until ctx is done or the pipe gives up.
func (f FifoServer) Start(ctx context.Context) error {
	ch := make(chan string, 100)

	listenerDone := make(chan error, 1)
	go func() {
		listenerDone <- f.fifo.Listen(ctx, f.path, ch)
	}()

	f.logger.InfoContext(ctx, "server: listening", slog.String("path", f.path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-listenerDone:
			if err != nil && ctx.Err() == nil {
				f.logger.ErrorContext(ctx, "server: listener stopped", slog.Any("error", err))
				return err
			}
			return nil
		case msg := <-ch:
			f.handleSafely(ctx, msg)
		}
	}
}

func (f FifoServer) handleSafely(ctx context.Context, msg string) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.ErrorContext(ctx, "server: recovered from panic while handling message",
				slog.Any("panic", r),
				slog.String("message", msg))
		}
	}()

	start := time.Now()

	if err := f.Handle(ctx, msg); err != nil {
		f.logger.ErrorContext(ctx, "server: message handling failed",
			slog.Any("error", err),
			slog.String("message", msg))
		return
	}

	f.logger.DebugContext(ctx, "server: handled",
		slog.String("message", msg),
		slog.Duration("elapsed", time.Since(start)))
}

func (f FifoServer) Handle(ctx context.Context, msg string) error {
	switch {
	case strings.HasPrefix(msg, MessageInit):
		f.logger.InfoContext(ctx, "server: handling init message")

		if err := f.config.Init(ctx); err != nil {
			return err
		}
		return f.config.Render(ctx, f.clock.Now(), true)

	case strings.HasPrefix(msg, MessageRefresh):
		return f.config.Render(ctx, f.clock.Now(), true)

	case strings.HasPrefix(msg, args.UpdatePrefix):
		in, err := args.FromEvent(msg)
		if err != nil {
			return err
		}

		f.logger.DebugContext(ctx, "server: processing update",
			slog.String("name", in.Name),
			slog.String("event", in.Event))

		return f.config.Update(ctx, in, f.clock.Now())

	default:
		f.logger.DebugContext(ctx, "server: unhandled message", slog.String("message", msg))
		return nil
	}
}
