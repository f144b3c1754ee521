package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const tickInterval = 50 * time.Millisecond

type keyMap struct {
	Pan     key.Binding
	Zoom    key.Binding
	Place   key.Binding
	Goto    key.Binding
	Marker  key.Binding
	Drag    key.Binding
	Click   key.Binding
	Style   key.Binding
	BoxZoom key.Binding
	Tiles   key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pan, k.Zoom, k.Place, k.Goto, k.Marker, k.Click, k.Style, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pan, k.Zoom, k.Place, k.Goto},
		{k.Marker, k.Drag, k.Click},
		{k.Style, k.BoxZoom, k.Tiles, k.Quit},
	}
}

var keys = keyMap{
	Pan:     key.NewBinding(key.WithKeys("up", "down", "left", "right", "h", "j", "k", "l"), key.WithHelp("←↓↑→", "pan")),
	Zoom:    key.NewBinding(key.WithKeys("+", "=", "-"), key.WithHelp("+/-", "zoom")),
	Place:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "fly to place")),
	Goto:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "fly to lng,lat")),
	Marker:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "add marker")),
	Drag:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "drag last marker")),
	Click:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "click center")),
	Style:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "next style")),
	BoxZoom: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "toggle box zoom")),
	Tiles:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tile boundaries")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type tickMsg time.Time

// interactiveModel holds the session in its model. bubbletea calls Update on
// the goroutine running the program, which is the goroutine that built the
// session; commands only wait on channels and timers.
type interactiveModel struct {
	err      error
	s        *session
	watcher  *styleWatcher
	input    textinput.Model
	help     help.Model
	height   int
	tiles    bool
	entering bool
}

func newInteractiveModel(s *session, watcher *styleWatcher) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "-74.0,40.7"
	ti.Prompt = "fly to: "
	ti.Width = 30
	return &interactiveModel{s: s, watcher: watcher, input: ti, help: help.New(), height: 24}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *interactiveModel) waitForStyle() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.updates()
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return tea.Batch(tick(), m.waitForStyle())
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.s.step()
		return m, tick()

	case styleLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = m.s.applyStyle(msg.style, msg.path)
		}
		return m, m.waitForStyle()

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.entering {
			return m.updateInput(msg)
		}
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		m.err = m.handleKey(msg)
	}
	return m, nil
}

func (m *interactiveModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.err = m.s.flyToInput(m.input.Value())
		m.entering = false
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case "esc":
		m.entering = false
		m.input.Blur()
		m.input.Reset()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) handleKey(msg tea.KeyMsg) error {
	const step = 100
	switch {
	case key.Matches(msg, keys.Pan):
		switch msg.String() {
		case "up", "k":
			return m.s.pan(0, -step)
		case "down", "j":
			return m.s.pan(0, step)
		case "left", "h":
			return m.s.pan(-step, 0)
		default:
			return m.s.pan(step, 0)
		}
	case key.Matches(msg, keys.Zoom):
		if msg.String() == "-" {
			return m.s.zoomBy(-1)
		}
		return m.s.zoomBy(1)
	case key.Matches(msg, keys.Place):
		return m.s.flyTo(int(msg.String()[0] - '1'))
	case key.Matches(msg, keys.Goto):
		m.entering = true
		m.input.Focus()
		return nil
	case key.Matches(msg, keys.Marker):
		return m.s.addMarkerAtCenter()
	case key.Matches(msg, keys.Drag):
		return m.s.dragLastMarker(0.01, 0.01)
	case key.Matches(msg, keys.Click):
		return m.s.clickCenter()
	case key.Matches(msg, keys.Style):
		return m.s.cycleStyle()
	case key.Matches(msg, keys.BoxZoom):
		h, err := m.s.m.BoxZoom()
		if err != nil {
			return err
		}
		if h.IsEnabled() {
			m.s.logf("box zoom off")
			return h.Disable()
		}
		m.s.logf("box zoom on")
		return h.Enable()
	case key.Matches(msg, keys.Tiles):
		m.tiles = !m.tiles
		return m.s.m.ShowTileBoundaries(m.tiles)
	}
	return nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Map Viewer"))
	b.WriteString(" ")
	b.WriteString(statusStyle.Render(m.s.status()))
	b.WriteString("\n\n")

	rows := m.height - 8
	if rows < 3 {
		rows = 3
	}
	for _, line := range m.s.tail(rows) {
		b.WriteString(logStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.entering {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(keys)))
	return b.String()
}

func runInteractive(s *session, watcher *styleWatcher) error {
	p := tea.NewProgram(newInteractiveModel(s, watcher), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
