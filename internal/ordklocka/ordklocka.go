package ordklocka

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lucax88x/ordklocka/cmd/cli/config"
	"github.com/lucax88x/ordklocka/internal/clock"
	"github.com/lucax88x/ordklocka/internal/command"
	"github.com/lucax88x/ordklocka/internal/fifo"
	"github.com/lucax88x/ordklocka/internal/power"
	"github.com/lucax88x/ordklocka/internal/server"
	"github.com/lucax88x/ordklocka/internal/sketchybar"
	"github.com/lucax88x/ordklocka/internal/tick"
)

// Ordklocka holds the wired dependencies of the daemon.
type Ordklocka struct {
	Logger     *slog.Logger
	Level      *slog.LevelVar
	Clock      clock.Clock
	CfgPath    string
	Config     *config.Config
	Sketchybar sketchybar.API
	Fifo       *fifo.Reader
	Server     *server.FifoServer
	Ticks      *tick.Job
}

func NewOrdklocka(
	logger *slog.Logger,
	level *slog.LevelVar,
	clock clock.Clock,
	cfg *config.Cfg,
	cfgPath string,
	fifoPath string,
) *Ordklocka {
	commandRunner := command.NewCommand(logger)
	api := sketchybar.NewAPI(logger, commandRunner)
	cfgRenderer := config.NewConfig(logger, api, cfg, fifoPath)
	fifoReader := fifo.NewFifoReader(logger)

	handler := func(ctx context.Context, now time.Time) {
		if err := cfgRenderer.Render(ctx, now, false); err != nil {
			logger.ErrorContext(ctx, "ordklocka: render failed", slog.Any("error", err))
		}
	}

	return &Ordklocka{
		Logger:     logger,
		Level:      level,
		Clock:      clock,
		CfgPath:    cfgPath,
		Config:     cfgRenderer,
		Sketchybar: api,
		Fifo:       fifoReader,
		Server:     server.NewFifoServer(logger, cfgRenderer, fifoReader, clock, fifoPath),
		Ticks: tick.NewJob(
			logger,
			clock,
			power.NewCadence(logger, clock, cfg.Power()),
			handler,
		),
	}
}

// Reload applies a new configuration to the running daemon.
func (o *Ordklocka) Reload(ctx context.Context, cfg *config.Cfg) error {
	if err := ApplyLogLevel(o.Level, cfg.LogLevel); err != nil {
		o.Logger.WarnContext(ctx, "ordklocka: keeping log level", slog.Any("error", err))
	}

	o.Ticks.SetCadence(power.NewCadence(o.Logger, o.Clock, cfg.Power()))

	if err := o.Config.Reload(ctx, cfg); err != nil {
		return fmt.Errorf("ordklocka: could not reload. %w", err)
	}

	return o.Config.Render(ctx, o.Clock.Now(), true)
}

// ApplyLogLevel sets level from its name, leaving it untouched when empty.
func ApplyLogLevel(level *slog.LevelVar, name string) error {
	if level == nil || name == "" {
		return nil
	}

	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("ordklocka: unknown log level '%s'. %w", name, err)
	}

	level.Set(parsed)
	return nil
}
