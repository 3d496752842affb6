package command

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/lucax88x/ordklocka/internal/encoding"
)

type Runner interface {
	Run(ctx context.Context, name string, arg ...string) (string, error)
}

type Command struct {
	logger *slog.Logger
}

func NewCommand(logger *slog.Logger) *Command {
	return &Command{
		logger,
	}
}

func (c Command) Run(ctx context.Context, name string, arg ...string) (string, error) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		c.logger.DebugContext(ctx, "command: took", slog.String("name", name), slog.Duration("elapsed", elapsed))
	}()

	cmd := exec.CommandContext(ctx, name, arg...)

	out, err := cmd.Output()

	if err != nil {
		//nolint:errorlint // no wrap
		return "", fmt.Errorf("command: could not run '%s'. %v", name, err)
	}

	decoded, err := encoding.DecodeOutput(out)

	if err != nil {
		return "", fmt.Errorf("command: could not decode output of '%s'. %w", name, err)
	}

	return decoded, nil
}

var _ Runner = (*Command)(nil)
