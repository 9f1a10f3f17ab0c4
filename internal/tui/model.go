package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/tock/internal/glyph"
	"github.com/garrettladley/tock/internal/source"
	"github.com/garrettladley/tock/internal/tui/components/ring"
	"github.com/garrettladley/tock/internal/tui/theme"
	"github.com/garrettladley/tock/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

const hint = "q to quit"

type Model struct {
	ready          bool
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	deps           Deps
	text           string
	finished       bool
}

func New(deps Deps) Model {
	if deps.Interval <= 0 {
		deps.Interval = time.Second
	}
	return Model{
		theme: theme.New(deps.Color),
		deps:  deps,
	}
}

func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return TickMsg{} }
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case TickMsg:
		text, ok := m.deps.Source.Next(m.deps.Clock.Now())
		if !ok {
			m.finished = true
			return m, tea.Quit
		}
		if text != m.text && m.deps.Logger != nil {
			m.deps.Logger.Debug("rendered frame", xslog.Frame(text))
		}
		m.text = text
		return m, tea.Tick(m.deps.Interval, func(time.Time) tea.Msg {
			return TickMsg{}
		})
	}

	return m, nil
}

// Finished reports whether the source ran out, as opposed to the user quitting.
func (m *Model) Finished() bool {
	return m.finished
}

func (m *Model) Text() string {
	return m.text
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.BackgroundColor = m.theme.Background()
	view.SetContent(m.content())
	return view
}

func (m *Model) content() string {
	if !m.ready {
		return ""
	}

	parts := []string{m.DisplayView()}
	if timer, ok := m.deps.Source.(*source.Timer); ok {
		parts = append(parts, "", m.ProgressView(timer))
	}
	parts = append(parts, "", m.theme.TextDim().Render(hint))

	return lipgloss.Place(
		m.viewportWidth,
		m.viewportHeight,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...),
	)
}

// DisplayView draws the current text with the glyph table, one line per glyph row.
func (m *Model) DisplayView() string {
	var (
		rows  = make([]string, glyph.Height)
		runes = []rune(m.text)
	)
	for i := range rows {
		var b strings.Builder
		for _, r := range runes {
			b.WriteString(m.deps.Table.Row(r, i))
			b.WriteByte(' ')
		}
		rows[i] = b.String()
	}
	return m.theme.TextAccent().Render(strings.Join(rows, "\n"))
}

func (m *Model) ProgressView(timer *source.Timer) string {
	progress := timer.Progress()
	return ring.New(
		progress,
		fmt.Sprintf("%.0f%%", progress*100),
		m.theme.Accent(),
		ring.WithTrack(m.theme.Track()),
		ring.WithTextColor(m.theme.Foreground()),
	).Render()
}
