package events

type Event = string

// https://felixkratz.github.io/SketchyBar/config/events
const (
	Forced       Event = "forced"
	Routine      Event = "routine"
	SystemWoke   Event = "system_woke"
	MouseClicked Event = "mouse.clicked"
)

// Tick is triggered by ordklocka itself after a redraw changed the phrase.
const Tick Event = "ordklocka_tick"
