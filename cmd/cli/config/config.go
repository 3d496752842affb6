package config

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lucax88x/ordklocka/cmd/cli/config/args"
	"github.com/lucax88x/ordklocka/cmd/cli/config/items"
	"github.com/lucax88x/ordklocka/internal/phrase"
	"github.com/lucax88x/ordklocka/internal/sketchybar"
	"github.com/lucax88x/ordklocka/internal/sketchybar/events"
	"golang.org/x/sync/singleflight"
)

// Config owns the sketchybar items and pushes the phrase into them.
type Config struct {
	logger     *slog.Logger
	sketchybar sketchybar.API
	fifoPath   string

	mu    sync.Mutex
	cfg   *Cfg
	items []items.OrdklockaItem
	ready bool
	shown *phrase.Phrase

	group singleflight.Group
}

// NewConfig builds a Config whose items forward their events to fifoPath.
func NewConfig(logger *slog.Logger, api sketchybar.API, cfg *Cfg, fifoPath string) *Config {
	return &Config{
		logger:     logger,
		sketchybar: api,
		fifoPath:   fifoPath,
		cfg:        cfg,
	}
}

func buildItems(logger *slog.Logger, cfg *Cfg, fifoPath string) []items.OrdklockaItem {
	if cfg.Layout == LayoutInline {
		return []items.OrdklockaItem{items.NewInlineItem(logger, cfg.Colors.Label, fifoPath)}
	}

	return []items.OrdklockaItem{
		items.NewRegionItem(logger, items.RegionMinute, cfg.Colors.Label, fifoPath),
		items.NewRegionItem(logger, items.RegionLink, cfg.Colors.Label, fifoPath),
		items.NewRegionItem(logger, items.RegionHour, cfg.Colors.Label, fifoPath),
	}
}

// Init removes what a previous run left behind and adds the items again.
func (c *Config) Init(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.init(ctx)
}

func (c *Config) init(ctx context.Context) error {
	c.items = buildItems(c.logger, c.cfg, c.fifoPath)
	c.ready = false
	c.shown = nil

	batches := items.Batches{{"--remove", "/ordklocka\\..*/"}}
	batches = items.Bar(c.logger, batches, c.cfg.ManageBar)

	for _, item := range c.items {
		var err error
		batches, err = item.Init(ctx, c.cfg.Position, batches)

		if err != nil {
			return fmt.Errorf("config: could not init item. %w", err)
		}
	}

	if err := c.sketchybar.Run(ctx, items.Flatten(batches)); err != nil {
		return fmt.Errorf("config: could not init sketchybar. %w", err)
	}

	c.ready = true
	c.logger.InfoContext(ctx, "config: initialised", slog.String("layout", c.cfg.Layout))
	return nil
}

// Reload swaps the configuration and initialises the items again.
func (c *Config) Reload(ctx context.Context, cfg *Cfg) error {
	c.mu.Lock()
	c.cfg = cfg
	c.mu.Unlock()

	return c.Init(ctx)
}

func (c *Config) Cfg() *Cfg {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cfg
}

// Render shows the phrase of now. Unless forced, nothing is sent when the
// phrase on screen is already the right one. Concurrent calls resolving to
// the same phrase share one sketchybar call and its result.
func (c *Config) Render(ctx context.Context, now time.Time, force bool) error {
	p := phrase.FromTime(now)

	key := "render:" + p.String()
	if force {
		key = "forced:" + p.String()
	}

	_, err, _ := c.group.Do(key, func() (interface{}, error) {
		return nil, c.render(ctx, p, force)
	})

	return err
}

func (c *Config) render(ctx context.Context, p phrase.Phrase, force bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// sketchybar may have been down when the daemon started
	if !c.ready {
		if err := c.init(ctx); err != nil {
			return err
		}
	}

	if !force && c.shown != nil && *c.shown == p {
		return nil
	}

	var batches items.Batches
	for _, item := range c.items {
		batches = item.Render(batches, p)
	}
	batches = items.Trigger(batches)

	if err := c.sketchybar.Run(ctx, items.Flatten(batches)); err != nil {
		c.shown = nil
		return fmt.Errorf("config: could not render. %w", err)
	}

	c.logger.DebugContext(ctx, "config: rendered", slog.String("phrase", p.String()))
	c.shown = &p
	return nil
}

// Update reacts to an event forwarded by one of the items.
func (c *Config) Update(ctx context.Context, in *args.In, now time.Time) error {
	if !c.handles(in) {
		c.logger.DebugContext(ctx, "config: ignoring event", slog.String("name", in.Name))
		return nil
	}

	switch in.Event {
	case events.SystemWoke, events.Forced, events.Routine, events.MouseClicked:
		return c.Render(ctx, now, true)
	default:
		c.logger.DebugContext(ctx, "config: unhandled event", slog.String("event", in.Event))
		return nil
	}
}

func (c *Config) handles(in *args.In) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.Handles(in) {
			return true
		}
	}

	return false
}
