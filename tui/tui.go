// Package tui hosts a trim view in a terminal. One terminal cell stands for one pixel:
// handles are two cells wide and the widget is three rows tall.
package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/hmomeni/trimview"
	"github.com/hmomeni/trimview/utils"
)

const (
	handleCells = 2
	rows        = 3
	// widgetTop is the screen row of the first widget row, below the title.
	widgetTop = 2
)

// ConfigMsg asks the model to apply a reloaded configuration.
type ConfigMsg struct {
	Config *trimview.Config
}

type tickMsg struct {
	id int
}

// Model is the bubbletea model of the terminal host.
type Model struct {
	ctrl   *trimview.Controller
	keys   keyMap
	help   help.Model
	styles styles
	log    logrus.FieldLogger

	// copy writes to the system clipboard.
	copy func(string) error

	width   int
	advance time.Duration
	playing bool
	tickID  int
	status  string
}

// New returns a model driving c. A zero advance disables the auto-advance key.
func New(c *trimview.Controller, advance time.Duration, log logrus.FieldLogger) *Model {
	c.SetHandleWidth(handleCells)
	c.SetLineHeight(1)
	return &Model{
		ctrl:    c,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  newStyles(trimview.DefaultStyle()),
		log:     log,
		copy:    clipboard.WriteAll,
		advance: advance,
	}
}

// SetStyle changes the colors used to draw the widget.
func (m *Model) SetStyle(s trimview.Style) {
	m.styles = newStyles(s)
}

// Run starts a full screen program with mouse support and blocks until it quits.
// Configurations received on reload are applied while the program runs.
func Run(m *Model, reload <-chan *trimview.Config) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if reload != nil {
		go func() {
			for cfg := range reload {
				p.Send(ConfigMsg{Config: cfg})
			}
		}()
	}
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	if m.advance > 0 {
		m.playing = true
		return m.tick()
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.ctrl.Resize(float32(msg.Width), rows)
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.KeyMsg:
		return m, m.key(msg)
	case tickMsg:
		if !m.playing || msg.id != m.tickID {
			return m, nil
		}
		trimview.Advance(m.ctrl)
		return m, m.tick()
	case ConfigMsg:
		if err := msg.Config.Apply(m.ctrl); err != nil {
			m.log.WithError(err).Warn("configuration rejected, keeping the current one")
			m.status = "config rejected: " + err.Error()
			return m, nil
		}
		if style, err := msg.Config.Style.Parse(); err == nil {
			m.SetStyle(style)
		}
		m.status = "config reloaded"
		return m, m.setAdvance(msg.Config.Playback.Advance.Duration)
	}
	return m, nil
}

// setAdvance changes the auto-advance interval. A zero interval stops playback,
// enabling a disabled one starts it. Ticks scheduled with the old interval are
// dropped.
func (m *Model) setAdvance(d time.Duration) tea.Cmd {
	if d == m.advance {
		return nil
	}
	wasOff := m.advance <= 0
	m.advance = d
	if d <= 0 {
		m.playing = false
		m.tickID++
		return nil
	}
	if wasOff {
		m.playing = true
	}
	if !m.playing {
		return nil
	}
	return m.tick()
}

// mouse forwards a mouse event to the controller. The event position is moved to the
// center of its cell.
func (m *Model) mouse(msg tea.MouseMsg) {
	x := float32(msg.X) + 0.5
	y := float32(msg.Y-widgetTop) + 0.5

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		mode := m.ctrl.PointerDown(x, y)
		m.log.WithField("mode", mode).Debug("drag started")
	case tea.MouseActionMotion:
		if !m.ctrl.Dragging() {
			return
		}
		if _, err := m.ctrl.PointerMove(x, y); err != nil {
			m.log.WithError(err).Debug("move ignored")
		}
	case tea.MouseActionRelease:
		if !m.ctrl.Dragging() {
			return
		}
		_ = m.ctrl.PointerUp(x, y)
	}
}

func (m *Model) key(msg tea.KeyMsg) tea.Cmd {
	c := m.ctrl
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Back):
		if c.Progress() > 0 {
			_ = c.SetProgress(c.Progress() - 1)
		}
	case key.Matches(msg, m.keys.Forward):
		trimview.Advance(c)
	case key.Matches(msg, m.keys.Rewind):
		_ = c.SetProgress(0)
	case key.Matches(msg, m.keys.Play):
		if m.advance <= 0 {
			m.status = "auto-advance is disabled"
			return nil
		}
		m.playing = !m.playing
		if m.playing {
			return m.tick()
		}
	case key.Matches(msg, m.keys.Copy):
		text := fmt.Sprintf("%d,%d", c.TrimStart(), c.Trim())
		if err := m.copy(text); err != nil {
			m.log.WithError(err).Warn("couldn't write to the clipboard")
			m.status = "clipboard unavailable"
			return nil
		}
		m.status = "copied " + text
	}
	return nil
}

// tick schedules the next auto-advance step. Older ticks are ignored once a new one is
// scheduled so that toggling never doubles the pace.
func (m *Model) tick() tea.Cmd {
	m.tickID++
	id := m.tickID
	return tea.Tick(m.advance, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// Status returns the text shown below the widget.
func (m *Model) Status() string {
	c := m.ctrl
	s := fmt.Sprintf("%s  progress %d/%d", utils.FormatRange(c.TrimStart(), c.Trim(), c.Max()), c.Progress(), c.Trim())
	if m.status != "" {
		s += "  " + m.status
	}
	return s
}
