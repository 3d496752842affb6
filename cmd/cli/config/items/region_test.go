package items_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lucax88x/ordklocka/cmd/cli/config/args"
	"github.com/lucax88x/ordklocka/cmd/cli/config/items"
	"github.com/lucax88x/ordklocka/internal/phrase"
	"github.com/lucax88x/ordklocka/internal/sketchybar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegionNames(t *testing.T) {
	assert.Equal(t, "ordklocka.minute", items.RegionMinute.Name())
	assert.Equal(t, "ordklocka.link", items.RegionLink.Name())
	assert.Equal(t, "ordklocka.hour", items.RegionHour.Name())
}

func TestRegionInit(t *testing.T) {
	item := items.NewRegionItem(newLogger(), items.RegionMinute, "", "")

	batches, err := item.Init(context.Background(), sketchybar.PositionRight, items.Batches{})
	require.NoError(t, err)
	require.Len(t, batches, 3)

	assert.Equal(t, []string{"--add", "item", "ordklocka.minute", "right"}, batches[0])
	assert.Equal(t, []string{"--subscribe", "ordklocka.minute", "system_woke"}, batches[2])

	set := strings.Join(batches[1], " ")
	assert.Contains(t, set, "width=0")
	assert.Contains(t, set, "label=Vänta")
	assert.Contains(t, set, "label.y_offset=10")
	assert.Contains(t, set, "label.font=SF Pro:Bold:9.0")
}

func TestRegionInitLastLineTakesRoom(t *testing.T) {
	item := items.NewRegionItem(newLogger(), items.RegionHour, "0xffa6da95", "")

	batches, err := item.Init(context.Background(), sketchybar.PositionLeft, items.Batches{})
	require.NoError(t, err)

	set := strings.Join(batches[1], " ")
	assert.NotContains(t, set, "width=0 ")
	assert.Contains(t, set, "label.y_offset=-10")
	assert.Contains(t, set, "label.color=0xffa6da95")
}

func TestRegionRender(t *testing.T) {
	p := phrase.Resolve(16, 45, 0)
	var batches items.Batches

	for _, region := range []items.Region{items.RegionMinute, items.RegionLink, items.RegionHour} {
		batches = items.NewRegionItem(newLogger(), region, "", "").Render(batches, p)
	}

	expected := items.Batches{
		{"--set", "ordklocka.minute", "label=kvart"},
		{"--set", "ordklocka.link", "label=i"},
		{"--set", "ordklocka.hour", "label=fem"},
	}

	if diff := cmp.Diff(expected, batches); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegionRenderClearsEmptyLines(t *testing.T) {
	p := phrase.Resolve(4, 30, 0)

	batches := items.NewRegionItem(newLogger(), items.RegionLink, "", "").Render(nil, p)

	assert.Equal(t, items.Batches{{"--set", "ordklocka.link", "label="}}, batches)
}

func TestInlineItem(t *testing.T) {
	item := items.NewInlineItem(newLogger(), "", "")

	batches := item.Render(nil, phrase.Resolve(16, 35, 0))

	assert.Equal(t, items.Batches{{"--set", "ordklocka.phrase", "label=fem över halv fem"}}, batches)
	assert.True(t, item.Handles(&args.In{Name: "ordklocka.phrase"}))
	assert.False(t, item.Handles(&args.In{Name: "ordklocka.hour"}))
}

func TestBar(t *testing.T) {
	batches := items.Bar(newLogger(), nil, false)
	assert.Equal(t, items.Batches{{"--add", "event", "ordklocka_tick"}}, batches)

	managed := items.Bar(newLogger(), nil, true)
	require.Len(t, managed, 2)
	assert.Equal(t, "--bar", managed[0][0])
}

func TestFlatten(t *testing.T) {
	flat := items.Flatten(items.Batches{{"--set", "a", "label=x"}, {"--trigger", "b"}})

	assert.Equal(t, []string{"--set", "a", "label=x", "--trigger", "b"}, flat)
}

func TestRegionInitScriptWritesToPipe(t *testing.T) {
	custom := items.NewRegionItem(newLogger(), items.RegionLink, "", "/tmp/custom-fifo")

	batches, err := custom.Init(context.Background(), sketchybar.PositionRight, items.Batches{})
	require.NoError(t, err)

	set := strings.Join(batches[1], " ")
	assert.Contains(t, set, ">> /tmp/custom-fifo")
	assert.NotContains(t, set, ">> /tmp/ordklocka")

	fallback := items.NewRegionItem(newLogger(), items.RegionLink, "", "")

	batches, err = fallback.Init(context.Background(), sketchybar.PositionRight, items.Batches{})
	require.NoError(t, err)
	assert.Contains(t, strings.Join(batches[1], " "), ">> /tmp/ordklocka")
}
