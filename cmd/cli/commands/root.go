package commands

import (
	"context"
	"log/slog"

	"github.com/lucax88x/ordklocka/cmd/cli/console"
	"github.com/lucax88x/ordklocka/cmd/cli/runner"
	"github.com/lucax88x/ordklocka/internal/setup"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRootCmd(
	ctx context.Context,
	logger *slog.Logger,
	level *slog.LevelVar,
	viper *viper.Viper,
	console *console.Console,
) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ordklocka",
		Short:         "tells the time in swedish words",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(runner.KeyConfig, "", "config file (default ~/.config/ordklocka/config.yaml)")
	rootCmd.PersistentFlags().String(runner.KeyLogLevel, "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String(runner.KeyFifo, "", "named pipe the items write events to")

	_ = viper.BindPFlag(runner.KeyConfig, rootCmd.PersistentFlags().Lookup(runner.KeyConfig))
	_ = viper.BindPFlag(runner.KeyLogLevel, rootCmd.PersistentFlags().Lookup(runner.KeyLogLevel))
	_ = viper.BindPFlag(runner.KeyFifo, rootCmd.PersistentFlags().Lookup(runner.KeyFifo))

	rootCmd.SetOut(console.Stdout)
	rootCmd.SetErr(console.Stderr)

	rootCmd.AddCommand(
		NewStartCmd(ctx, logger, level, viper, console),
		NewNowCmd(ctx, logger, level, viper, console),
		NewWatchCmd(ctx, logger, level, viper, console),
		NewTriggerCmd(viper, console),
	)

	return rootCmd
}

func NewCliExecutor(viper *viper.Viper, console *console.Console) setup.ProgramExecutor {
	return func(ctx context.Context, logger *slog.Logger, level *slog.LevelVar) error {
		return NewRootCmd(ctx, logger, level, viper, console).ExecuteContext(ctx)
	}
}
