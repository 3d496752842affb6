package commands

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/lucax88x/ordklocka/cmd/cli/config/args"
	"github.com/lucax88x/ordklocka/cmd/cli/console"
	"github.com/lucax88x/ordklocka/cmd/cli/runner"
	"github.com/lucax88x/ordklocka/internal/fifo"
	"github.com/lucax88x/ordklocka/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errNotRunning = errors.New("trigger: ordklocka is not running")

func NewTriggerCmd(viper *viper.Viper, console *console.Console) *cobra.Command {
	triggerCmd := &cobra.Command{
		Use:       "trigger [refresh|init]",
		Short:     "ask the running daemon to redraw",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{server.MessageRefresh, server.MessageInit},
		RunE: func(_ *cobra.Command, cmdArgs []string) error {
			msg := server.MessageRefresh
			if len(cmdArgs) == 1 {
				msg = cmdArgs[0]
			}

			return send(runner.FifoPath(viper), msg)
		},
	}

	scriptCmd := &cobra.Command{
		Use:   "script",
		Short: "print the script an item runs to forward its events",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			script, err := args.BuildEventTo(runner.FifoPath(viper))

			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(console.Stdout, script)
			return err
		},
	}

	triggerCmd.AddCommand(scriptCmd)

	triggerCmd.SetOut(console.Stdout)
	triggerCmd.SetErr(console.Stderr)

	return triggerCmd
}

// send writes msg without blocking; with no reader on the pipe the open fails.
func send(path string, msg string) error {
	pipe, err := os.OpenFile(path, os.O_WRONLY|syscall.O_NONBLOCK, os.ModeNamedPipe)

	if errors.Is(err, syscall.ENXIO) || errors.Is(err, os.ErrNotExist) {
		return errNotRunning
	}

	if err != nil {
		return fmt.Errorf("trigger: could not open %s. %w", path, err)
	}

	defer pipe.Close()

	if _, err := fmt.Fprintf(pipe, "%s%c", msg, fifo.Separator); err != nil {
		return fmt.Errorf("trigger: could not write. %w", err)
	}

	return nil
}
