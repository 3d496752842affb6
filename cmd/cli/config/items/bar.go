package items

import (
	"log/slog"

	"github.com/lucax88x/ordklocka/cmd/cli/config/settings"
	"github.com/lucax88x/ordklocka/internal/sketchybar"
	"github.com/lucax88x/ordklocka/internal/sketchybar/events"
)

// Bar declares the tick event other items may subscribe to and, when the bar
// is managed by ordklocka, styles it.
func Bar(logger *slog.Logger, batches Batches, manage bool) Batches {
	if manage {
		logger.Debug("bar: styling")

		bar := sketchybar.BarOptions{
			Height: settings.Sketchybar.BarHeight,
			Margin: settings.Sketchybar.BarMargin,
			Color: sketchybar.ColorOptions{
				Color: settings.Sketchybar.BarBackgroundColor,
			},
		}

		batches = batch(batches, m(s("--bar"), bar.ToArgs()))
	}

	return batch(batches, s("--add", "event", events.Tick))
}

// Trigger notifies subscribers that the phrase changed.
func Trigger(batches Batches) Batches {
	return batch(batches, s("--trigger", events.Tick))
}
