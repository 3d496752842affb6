package items

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lucax88x/ordklocka/cmd/cli/config/args"
	"github.com/lucax88x/ordklocka/cmd/cli/config/settings"
	"github.com/lucax88x/ordklocka/internal/encoding"
	"github.com/lucax88x/ordklocka/internal/phrase"
	"github.com/lucax88x/ordklocka/internal/sketchybar"
	"github.com/lucax88x/ordklocka/internal/sketchybar/events"
)

// Region is one of the three stacked text lines, top to bottom.
type Region int

const (
	RegionMinute Region = iota
	RegionLink
	RegionHour
)

const itemPrefix = "ordklocka"

func (r Region) Name() string {
	switch r {
	case RegionMinute:
		return itemPrefix + ".minute"
	case RegionLink:
		return itemPrefix + ".link"
	case RegionHour:
		return itemPrefix + ".hour"
	default:
		return fmt.Sprintf("%s.region%d", itemPrefix, int(r))
	}
}

// Placeholder is shown until the first tick: "Vänta lite".
func (r Region) Placeholder() string {
	switch r {
	case RegionMinute:
		return "Vänta"
	case RegionLink:
		return "lite"
	default:
		return ""
	}
}

func (r Region) Bold() bool {
	return r != RegionLink
}

func (r Region) text(p phrase.Phrase) string {
	return p.Lines()[r]
}

// yOffset places the middle line on the bar's center and the others above and below it.
func (r Region) yOffset() int {
	return (int(RegionLink) - int(r)) * *settings.Sketchybar.Region.LineOffset
}

type RegionItem struct {
	logger   *slog.Logger
	region   Region
	color    string
	fifoPath string
}

func NewRegionItem(logger *slog.Logger, region Region, color string, fifoPath string) RegionItem {
	return RegionItem{logger, region, color, fifoPath}
}

func (i RegionItem) Init(
	_ context.Context,
	position sketchybar.Position,
	batches Batches,
) (Batches, error) {
	updateEvent, err := args.BuildEventTo(i.fifoPath)

	if err != nil {
		return batches, fmt.Errorf("region: could not generate update event. %w", err)
	}

	kind := settings.Sketchybar.LabelFontRegular
	if i.region.Bold() {
		kind = settings.Sketchybar.LabelFontBold
	}

	color := settings.Sketchybar.LabelColor
	if i.color != "" {
		color = i.color
	}

	item := sketchybar.ItemOptions{
		Display: "active",
		Padding: sketchybar.PaddingOptions{
			Left:  pointer(0),
			Right: pointer(0),
		},
		Icon: sketchybar.ItemIconOptions{
			Drawing: "off",
		},
		Label: sketchybar.ItemLabelOptions{
			Value:   i.region.Placeholder(),
			Align:   "center",
			Width:   settings.Sketchybar.Region.Width,
			YOffset: pointer(i.region.yOffset()),
			Font: sketchybar.FontOptions{
				Font: settings.Sketchybar.LabelFont,
				Kind: kind,
				Size: settings.Sketchybar.Region.FontSize,
			},
			Color: sketchybar.ColorOptions{
				Color: color,
			},
		},
		Script:      updateEvent,
		ClickScript: updateEvent,
	}

	// every line but the last takes no room, so the next one is drawn over it
	if i.region != RegionHour {
		item.Width = pointer(0)
	}

	name := i.region.Name()
	batches = batch(batches, s("--add", "item", name, position))
	batches = batch(batches, m(s("--set", name), item.ToArgs()))
	batches = batch(batches, s("--subscribe", name, events.SystemWoke))

	return batches, nil
}

func (i RegionItem) Render(batches Batches, p phrase.Phrase) Batches {
	text := encoding.Label(i.region.text(p))

	return batch(batches, m(s("--set", i.region.Name()), sketchybar.LabelArgs(text)))
}

func (i RegionItem) Handles(args *args.In) bool {
	return args.Name == i.region.Name()
}

var _ OrdklockaItem = (*RegionItem)(nil)
