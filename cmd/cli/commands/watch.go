package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucax88x/ordklocka/cmd/cli/console"
	"github.com/lucax88x/ordklocka/cmd/cli/runner"
	"github.com/lucax88x/ordklocka/internal/ordklocka"
	"github.com/lucax88x/ordklocka/internal/watchface"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewWatchCmd(
	ctx context.Context,
	logger *slog.Logger,
	level *slog.LevelVar,
	viper *viper.Viper,
	console *console.Console,
) *cobra.Command {
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "show the time in words in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, logger, level, viper, console, args, runWatchCmd())
		},
	}

	watchCmd.SetOut(console.Stdout)
	watchCmd.SetErr(console.Stderr)

	return watchCmd
}

func runWatchCmd() runner.RunE {
	return func(
		ctx context.Context,
		console *console.Console,
		_ []string,
		di *ordklocka.Ordklocka,
	) error {
		model := watchface.NewModel(di.Clock, di.Config.Cfg().Refresh)

		program := tea.NewProgram(
			model,
			tea.WithContext(ctx),
			tea.WithOutput(console.Stdout),
			tea.WithAltScreen(),
		)

		_, err := program.Run()

		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("watch: program failed. %w", err)
		}

		return nil
	}
}
