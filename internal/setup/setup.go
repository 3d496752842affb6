package setup

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/lucax88x/ordklocka/cmd/cli/console"
	"github.com/spf13/viper"
)

type ExecutionResult = int

const (
	Ok    ExecutionResult = 0
	NotOk ExecutionResult = -1
)

const EnvPrefix = "ORDKLOCKA"

func initViper() *viper.Viper {
	viperInstance := viper.New()

	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viperInstance.AutomaticEnv()

	return viperInstance
}

type ProgramExecutor func(ctx context.Context, logger *slog.Logger, level *slog.LevelVar) error

type ExecutorBuilder func(
	viper *viper.Viper,
	console *console.Console,
) ProgramExecutor

func Run(buildExecutor ExecutorBuilder) ExecutionResult {
	start := time.Now()

	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)

	logger := slog.New(tint.NewHandler(
		os.Stderr,
		&tint.Options{Level: level, TimeFormat: time.TimeOnly},
	))

	defer func() {
		elapsed := time.Since(start)
		logger.Debug("cli: took", slog.Duration("elapsed", elapsed))
	}()

	console := &console.Console{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := buildExecutor(initViper(), console)(ctx, logger, level)

	if err != nil {
		logger.Error("main: failed to execute program", slog.Any("err", err))
		return NotOk
	}

	logger.Debug("main: completed", slog.Int("status_code", Ok))

	return Ok
}
