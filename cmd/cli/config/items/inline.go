package items

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lucax88x/ordklocka/cmd/cli/config/args"
	"github.com/lucax88x/ordklocka/cmd/cli/config/settings"
	"github.com/lucax88x/ordklocka/cmd/cli/config/settings/icons"
	"github.com/lucax88x/ordklocka/internal/encoding"
	"github.com/lucax88x/ordklocka/internal/phrase"
	"github.com/lucax88x/ordklocka/internal/sketchybar"
	"github.com/lucax88x/ordklocka/internal/sketchybar/events"
)

const inlineItemName = itemPrefix + ".phrase"

// InlineItem shows the whole phrase on one line, for bars too thin to stack.
type InlineItem struct {
	logger   *slog.Logger
	color    string
	fifoPath string
}

func NewInlineItem(logger *slog.Logger, color string, fifoPath string) InlineItem {
	return InlineItem{logger, color, fifoPath}
}

func (i InlineItem) Init(
	_ context.Context,
	position sketchybar.Position,
	batches Batches,
) (Batches, error) {
	updateEvent, err := args.BuildEventTo(i.fifoPath)

	if err != nil {
		return batches, fmt.Errorf("inline: could not generate update event. %w", err)
	}

	color := settings.Sketchybar.LabelColor
	if i.color != "" {
		color = i.color
	}

	item := sketchybar.ItemOptions{
		Display: "active",
		Padding: sketchybar.PaddingOptions{
			Left:  settings.Sketchybar.ItemSpacing,
			Right: settings.Sketchybar.ItemSpacing,
		},
		Icon: sketchybar.ItemIconOptions{
			Value: icons.Clock,
			Color: sketchybar.ColorOptions{
				Color: settings.Sketchybar.IconColor,
			},
			Padding: sketchybar.PaddingOptions{
				Left:  pointer(*settings.Sketchybar.IconPadding / 2),
				Right: pointer(*settings.Sketchybar.IconPadding / 2),
			},
		},
		Label: sketchybar.ItemLabelOptions{
			Value: RegionMinute.Placeholder() + " " + RegionLink.Placeholder(),
			Font: sketchybar.FontOptions{
				Font: settings.Sketchybar.LabelFont,
				Kind: settings.Sketchybar.LabelFontBold,
				Size: settings.Sketchybar.LabelFontSize,
			},
			Color: sketchybar.ColorOptions{
				Color: color,
			},
			Padding: sketchybar.PaddingOptions{
				Left:  pointer(0),
				Right: settings.Sketchybar.IconPadding,
			},
		},
		Script:      updateEvent,
		ClickScript: updateEvent,
	}

	batches = batch(batches, s("--add", "item", inlineItemName, position))
	batches = batch(batches, m(s("--set", inlineItemName), item.ToArgs()))
	batches = batch(batches, s("--subscribe", inlineItemName, events.SystemWoke))

	return batches, nil
}

func (i InlineItem) Render(batches Batches, p phrase.Phrase) Batches {
	text := encoding.Label(p.String())

	return batch(batches, m(s("--set", inlineItemName), sketchybar.LabelArgs(text)))
}

func (i InlineItem) Handles(args *args.In) bool {
	return args.Name == inlineItemName
}

var _ OrdklockaItem = (*InlineItem)(nil)
