package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lucax88x/ordklocka/cmd/cli/console"
	"github.com/lucax88x/ordklocka/cmd/cli/runner"
	"github.com/lucax88x/ordklocka/internal/clock"
	"github.com/lucax88x/ordklocka/internal/ordklocka"
	"github.com/lucax88x/ordklocka/internal/phrase"
	"github.com/lucax88x/ordklocka/internal/watchface"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type nowOptions struct {
	at    string
	plain bool
}

func NewNowCmd(
	ctx context.Context,
	logger *slog.Logger,
	level *slog.LevelVar,
	viper *viper.Viper,
	console *console.Console,
) *cobra.Command {
	options := &nowOptions{}

	nowCmd := &cobra.Command{
		Use:   "now",
		Short: "print the time in words",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, logger, level, viper, console, args, runNowCmd(options))
		},
	}

	nowCmd.Flags().StringVar(&options.at, "at", "", "time of day to render instead of now, as HH:MM or HH:MM:SS")
	nowCmd.Flags().BoolVar(&options.plain, "plain", false, "print a single line without the face")

	nowCmd.SetOut(console.Stdout)
	nowCmd.SetErr(console.Stderr)

	return nowCmd
}

func runNowCmd(options *nowOptions) runner.RunE {
	return func(
		_ context.Context,
		console *console.Console,
		_ []string,
		di *ordklocka.Ordklocka,
	) error {
		now := di.Clock.Now()

		if options.at != "" {
			var err error
			now, err = clock.ParseTimeOfDay(options.at, now)

			if err != nil {
				return fmt.Errorf("now: invalid --at '%s'. %w", options.at, err)
			}
		}

		p := phrase.FromTime(now)

		if options.plain {
			_, err := fmt.Fprintln(console.Stdout, p.String())
			return err
		}

		_, err := fmt.Fprintln(console.Stdout, watchface.Render(watchface.DefaultStyles(), p))
		return err
	}
}
