package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/firescreen/internal/core"
)

// FrameFunc runs one frame of the screen machine.
type FrameFunc func() error

// Model is the Bubble Tea model driving the screen machine.
type Model struct {
	frame    FrameFunc
	sink     *Sink
	latch    *core.KeyLatch
	keys     KeyMap
	help     help.Model
	styles   styleCache
	tickRate int
	err      error
	quitting bool
}

// NewModel creates a model that runs frame at tickRate, feeding key presses
// into latch and printing the cells of sink.
func NewModel(frame FrameFunc, sink *Sink, latch *core.KeyLatch, tickRate int) Model {
	if tickRate <= 0 {
		tickRate = 60
	}
	return Model{
		frame:    frame,
		sink:     sink,
		latch:    latch,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   make(styleCache),
		tickRate: tickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Snapshot):
		m.saveScreenshot()
		return m, nil
	}

	if b, ok := m.keys.MapKey(msg); ok {
		m.latch.Press(b)
	}
	return m, nil
}

// handleResize fits the cell buffer to the terminal, leaving a line for help.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	m.sink.Cells().Resize(msg.Width, max(1, msg.Height-1))
	return m, nil
}

// handleTick runs one frame. A frame error ends the program.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if err := m.frame(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current cells as text.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".firescreen", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("frame_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, the demo continues regardless
	os.WriteFile(path, []byte(m.sink.Cells().String()), 0o600)
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error { return m.err }

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.sink.Cells(), m.styles) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until it quits.
func Run(frame FrameFunc, sink *Sink, latch *core.KeyLatch, tickRate int) error {
	model := NewModel(frame, sink, latch, tickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
