package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lucax88x/ordklocka/cmd/cli/config"
	"github.com/lucax88x/ordklocka/cmd/cli/config/settings"
	"github.com/lucax88x/ordklocka/cmd/cli/console"
	"github.com/lucax88x/ordklocka/cmd/cli/runner"
	"github.com/lucax88x/ordklocka/internal/ordklocka"
	"github.com/lucax88x/ordklocka/internal/watcher"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const restartDelay = 5 * time.Second

func NewStartCmd(
	ctx context.Context,
	logger *slog.Logger,
	level *slog.LevelVar,
	viper *viper.Viper,
	console *console.Console,
) *cobra.Command {
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "start the sketchybar daemon",
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, logger, level, viper, console, args, runStartCmd(viper))
		},
	}

	startCmd.SetOut(console.Stdout)
	startCmd.SetErr(console.Stderr)

	return startCmd
}

func runStartCmd(viper *viper.Viper) runner.RunE {
	return func(
		ctx context.Context,
		_ *console.Console,
		_ []string,
		di *ordklocka.Ordklocka,
	) error {
		release, err := acquirePidFile(ctx, di.Logger, settings.PidFilePath)
		if err != nil {
			return err
		}
		defer release()

		fifoPath := runner.FifoPath(viper)
		startFifoWithRetry(ctx, di, fifoPath)

		defer func() {
			if err := di.Fifo.Remove(fifoPath); err != nil {
				di.Logger.ErrorContext(ctx, "start: could not remove fifo", slog.Any("error", err))
			}
		}()

		di.Logger.InfoContext(ctx, "start: config init")
		if err := di.Config.Init(ctx); err != nil {
			di.Logger.ErrorContext(ctx, "start: config init failed, continuing anyway", slog.Any("error", err))
		}

		group, groupCtx := errgroup.WithContext(ctx)

		group.Go(func() error {
			runWithRecovery(groupCtx, di.Logger, "server", di.Server.Start)
			return nil
		})

		group.Go(func() error {
			runWithRecovery(groupCtx, di.Logger, "ticks", func(ctx context.Context) error {
				di.Ticks.Run(ctx)
				return nil
			})
			return nil
		})

		group.Go(func() error {
			cfgWatcher := watcher.NewFileWatcher(di.Logger, di.CfgPath, reload(di))
			runWithRecovery(groupCtx, di.Logger, "watcher", cfgWatcher.Watch)
			return nil
		})

		err = group.Wait()

		di.Logger.InfoContext(ctx, "start: shutdown complete")

		return err
	}
}

// acquirePidFile fails when another daemon holds path. Other pid file errors
// are logged and the daemon runs without one; release only removes a file
// this process wrote.
func acquirePidFile(ctx context.Context, logger *slog.Logger, path string) (func(), error) {
	err := runner.CreatePidFile(path)

	if errors.Is(err, runner.ErrAlreadyRunning) {
		return nil, fmt.Errorf("start: %w", err)
	}

	if err != nil {
		logger.ErrorContext(ctx, "start: could not create pid file, continuing anyway", slog.Any("error", err))
		return func() {}, nil
	}

	return func() {
		if err := runner.RemovePidFile(path); err != nil {
			logger.ErrorContext(ctx, "start: could not remove pid file", slog.Any("error", err))
		}
	}, nil
}

func reload(di *ordklocka.Ordklocka) watcher.OnChange {
	return func(ctx context.Context) {
		cfg, err := config.ReadYaml(di.CfgPath)

		if err != nil {
			di.Logger.ErrorContext(ctx, "start: keeping previous config", slog.Any("error", err))
			return
		}

		if err := di.Reload(ctx, cfg); err != nil {
			di.Logger.ErrorContext(ctx, "start: reload failed", slog.Any("error", err))
			return
		}

		di.Logger.InfoContext(ctx, "start: config reloaded", slog.String("path", di.CfgPath))
	}
}

func startFifoWithRetry(ctx context.Context, di *ordklocka.Ordklocka, path string) {
	maxRetries := 5
	retryDelay := time.Second * 2

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := di.Fifo.Start(path)

		if err == nil {
			di.Logger.InfoContext(ctx, "start: fifo started", slog.String("path", path))
			return
		}

		di.Logger.ErrorContext(ctx, "start: could not start fifo",
			slog.Any("error", err),
			slog.Int("attempt", attempt),
			slog.Int("maxRetries", maxRetries))

		select {
		case <-ctx.Done():
			return
		case <-time.After(retryDelay):
		}
	}

	di.Logger.ErrorContext(ctx, "start: fifo failed to start after all retries, continuing without fifo")
}

// runWithRecovery runs fn until ctx is done, restarting it after a delay
// when it fails or panics.
func runWithRecovery(
	ctx context.Context,
	logger *slog.Logger,
	name string,
	fn func(ctx context.Context) error,
) {
	for {
		err := runSafely(ctx, fn)

		if ctx.Err() != nil {
			logger.InfoContext(ctx, "start: stopped", slog.String("name", name))
			return
		}

		logger.ErrorContext(ctx, "start: stopped unexpectedly, restarting",
			slog.String("name", name),
			slog.Any("error", err),
			slog.Duration("delay", restartDelay))

		select {
		case <-ctx.Done():
			return
		case <-time.After(restartDelay):
		}
	}
}

func runSafely(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("start: recovered from panic: %v", r)
		}
	}()

	return fn(ctx)
}
