package sketchybar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lucax88x/ordklocka/internal/command"
)

type Position = string

const (
	PositionLeft   Position = "left"
	PositionCenter Position = "center"
	PositionRight  Position = "right"
	PositionQ      Position = "q"
	PositionE      Position = "e"
)

const AnimationTanh = "tanh"

type API interface {
	Run(ctx context.Context, args []string) error
}

type sketchybarAPI struct {
	logger  *slog.Logger
	command command.Runner
}

func NewAPI(logger *slog.Logger, command command.Runner) API {
	return &sketchybarAPI{logger, command}
}

func (api sketchybarAPI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}

	api.logger.DebugContext(ctx, "sketchybar: run", slog.Any("args", args))

	_, err := api.command.Run(ctx, "sketchybar", args...)

	if err != nil {
		return fmt.Errorf("sketchybar: could not run. %w", err)
	}

	return nil
}

func IsPosition(value string) bool {
	switch value {
	case PositionLeft, PositionCenter, PositionRight, PositionQ, PositionE:
		return true
	default:
		return false
	}
}
