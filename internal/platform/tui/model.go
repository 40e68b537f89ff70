package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/towerflap/internal/core"
	"github.com/vovakirdan/towerflap/internal/engine"
	"github.com/vovakirdan/towerflap/internal/games/flappy"
)

// Options configures the terminal front end.
type Options struct {
	TickRate int  // Ticks per second
	Width    int  // Initial terminal width, 0 until the first resize
	Height   int  // Initial terminal height
	Colors   bool // Render with lipgloss colours
	ShowHelp bool // Show the key help footer
}

// Model is the Bubble Tea model for one session.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	opts       Options
	interval   time.Duration
	viewport   Viewport
	inputFrame core.InputFrame
	snapshot   flappy.Snapshot
	best       int
	quitting   bool
}

// NewModel creates a model around an existing session.
// A nil logger discards log output.
func NewModel(game *flappy.Game, opts Options, logger *log.Logger) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(0, 0),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		opts:       opts,
		interval:   tickInterval(opts.TickRate),
		inputFrame: core.NewInputFrame(),
		snapshot:   game.Snapshot(),
	}
	m.layout(opts.Width, opts.Height)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout(m.screen.Width(), m.opts.Height)
		return m, nil
	}

	// Quit still goes through the session so it sees the request.
	if m.keys.MapKey(msg, m.snapshot, &m.inputFrame) {
		m.game.Step(m.inputFrame)
		m.inputFrame.Clear()
		m.quitting = true
		m.logger.Info("quit requested", "score", m.snapshot.Score, "best", m.best)
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse queues restart clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	MapMouse(msg, m.viewport, &m.inputFrame)
	return m, nil
}

// handleResize refits the playfield. The session is not touched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Width, m.opts.Height = msg.Width, msg.Height
	m.layout(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	engine.LogEvents(m.logger, result.Events)
	if result.State.Score > m.best {
		m.best = result.State.Score
	}

	m.snapshot = m.game.Snapshot()

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.interval)
}

// layout sizes the screen and playfield, leaving room for the footer.
func (m *Model) layout(width, height int) {
	if width <= 0 || height <= 0 {
		m.screen.Resize(0, 0)
		m.viewport = Viewport{}
		return
	}

	footer := 0
	if m.opts.ShowHelp {
		m.help.Width = width
		footer = lipgloss.Height(m.help.View(m.keys))
	}
	rows := max(height-footer, 1)

	m.screen.Resize(width, rows)
	m.viewport = FitViewport(width, rows)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.screen.Width() == 0 {
		return "starting..."
	}

	Rasterize(m.screen, m.snapshot, m.viewport)
	out := RenderScreen(m.screen, m.opts.Colors)
	if !m.opts.ShowHelp {
		return out
	}
	return out + "\n" + m.help.View(m.keys)
}

// Snapshot returns the snapshot the model last rendered.
func (m Model) Snapshot() flappy.Snapshot {
	return m.snapshot
}

// Run starts the Bubble Tea program for the given session.
func Run(game *flappy.Game, opts Options, logger *log.Logger) error {
	model := NewModel(game, opts, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the restart control
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
