package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lucax88x/ordklocka/cmd/cli/config"
	"github.com/lucax88x/ordklocka/cmd/cli/config/settings"
	"github.com/lucax88x/ordklocka/cmd/cli/console"
	"github.com/lucax88x/ordklocka/internal/clock"
	"github.com/lucax88x/ordklocka/internal/ordklocka"
	"github.com/spf13/viper"
)

const (
	KeyConfig   = "config"
	KeyLogLevel = "log-level"
	KeyFifo     = "fifo"
)

type RunE func(
	ctx context.Context,
	console *console.Console,
	args []string,
	di *ordklocka.Ordklocka,
) error

// LoadCfg reads the config file named by viper, or the default one.
func LoadCfg(viper *viper.Viper) (*config.Cfg, string, error) {
	path := viper.GetString(KeyConfig)

	if path == "" {
		var err error
		path, err = config.Path()

		if err != nil {
			return nil, "", err
		}
	}

	cfg, err := config.ReadYaml(path)

	if err != nil {
		return nil, path, err
	}

	if level := viper.GetString(KeyLogLevel); level != "" {
		cfg.LogLevel = level
	}

	return cfg, path, nil
}

func FifoPath(viper *viper.Viper) string {
	if path := viper.GetString(KeyFifo); path != "" {
		return path
	}

	return settings.FifoPath
}

func RunCmdE(
	ctx context.Context,
	logger *slog.Logger,
	level *slog.LevelVar,
	viper *viper.Viper,
	console *console.Console,
	args []string,
	runE RunE,
) error {
	cfg, path, err := LoadCfg(viper)

	if err != nil {
		return fmt.Errorf("runner: could not load config. %w", err)
	}

	if err := ordklocka.ApplyLogLevel(level, cfg.LogLevel); err != nil {
		return err
	}

	logger.DebugContext(ctx, "runner: config loaded", slog.String("path", path))

	di := ordklocka.NewOrdklocka(
		logger,
		level,
		clock.NewSystemClock(),
		cfg,
		path,
		FifoPath(viper),
	)

	return runE(ctx, console, args, di)
}
