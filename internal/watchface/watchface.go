// Package watchface draws the phrase as a small terminal watch face: three
// centered lines in a rounded frame, bold hour and minute.
package watchface

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucax88x/ordklocka/internal/clock"
	"github.com/lucax88x/ordklocka/internal/phrase"
)

const faceWidth = 20

type Styles struct {
	Frame  lipgloss.Style
	Bold   lipgloss.Style
	Normal lipgloss.Style
	Footer lipgloss.Style
}

func DefaultStyles() Styles {
	line := lipgloss.NewStyle().Width(faceWidth).Align(lipgloss.Center)

	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2),
		Bold:   line.Bold(true),
		Normal: line,
		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Render draws p, one line per region. Empty regions keep their line so the
// face does not jump.
func Render(styles Styles, p phrase.Phrase) string {
	lines := p.Lines()

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		styles.Bold.Render(lines[0]),
		styles.Normal.Render(lines[1]),
		styles.Bold.Render(lines[2]),
	)

	return styles.Frame.Render(body)
}

type TickMsg time.Time

type Model struct {
	clock    clock.Clock
	interval time.Duration
	styles   Styles
	phrase   phrase.Phrase
	digital  bool
	now      time.Time
}

func NewModel(clock clock.Clock, interval time.Duration) Model {
	now := clock.Now()

	return Model{
		clock:    clock,
		interval: interval,
		styles:   DefaultStyles(),
		phrase:   phrase.FromTime(now),
		now:      now,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "d":
			m.digital = !m.digital
		}
		return m, nil
	case TickMsg:
		m.now = m.clock.Now()
		m.phrase = phrase.FromTime(m.now)
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	face := Render(m.styles, m.phrase)

	footer := "d: digital  q: quit"
	if m.digital {
		footer = m.now.Format(clock.HoursMinutes) + "  " + footer
	}

	return lipgloss.JoinVertical(lipgloss.Center, face, m.styles.Footer.Render(footer)) + "\n"
}

func (m Model) Phrase() phrase.Phrase {
	return m.phrase
}
