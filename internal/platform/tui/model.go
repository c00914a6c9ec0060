package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// footerLines is the space below the screen buffer for input and help.
const footerLines = 2

// Model is the Bubble Tea model for the simulation screen.
type Model struct {
	sim        *session
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	mapper     *KeyMapper
	help       help.Model
	seedInput  textinput.Model
	editing    bool
	inputFrame core.InputFrame
	cursor     core.Coord
	showBounds bool
	lastTick   time.Time
	status     string

	history     HistoryModel
	showHistory bool

	quitting bool
}

// NewModel creates a new Bubble Tea model for the simulation described by cfg.
func NewModel(cfg config.LifeConfig, store *storage.Store, logger *log.Logger, rt core.RuntimeConfig) (Model, error) {
	sim, err := newSession(cfg, store, logger)
	if err != nil {
		return Model{}, err
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	ti := textinput.New()
	ti.Prompt = "seed> "
	ti.Placeholder = "empty for a blank map"
	ti.CharLimit = 20
	ti.Width = 24

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false
	h.Width = rt.ScreenW

	return Model{
		sim:        sim,
		screen:     core.NewScreen(rt.ScreenW, core.Max(rt.ScreenH-footerLines, 1)),
		config:     rt,
		keys:       keys,
		mapper:     NewKeyMapper(keys),
		help:       h,
		seedInput:  ti,
		inputFrame: core.NewInputFrame(),
		cursor:     sim.controller.Center(),
		showBounds: cfg.TrackBounds,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showHistory {
		return m.updateHistory(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.handleSeedInput(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.seedInput, cmd = m.seedInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.mapper.MapKey(msg)
	switch {
	case isQuit:
		m.sim.record()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionEditSeed:
		m.editing = true
		value := ""
		if m.sim.seed.Valid {
			value = m.sim.seed.String()
		}
		m.seedInput.SetValue(value)
		m.seedInput.CursorEnd()
		cmd := m.seedInput.Focus()
		return m, cmd

	case action == core.ActionHistory:
		m.history = NewHistoryModel(m.sim.store, m.config.ScreenW, m.config.ScreenH)
		m.history.embedded = true
		m.showHistory = true
		return m, nil

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleSeedInput routes keys to the seed field while it has focus.
func (m Model) handleSeedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.sim.seed = life.ParseSeed(m.seedInput.Value())
		m.editing = false
		m.seedInput.Blur()
		m.sim.reset()
		m.cursor = m.sim.controller.Center()
		m.status = "seed " + m.sim.seed.String()
		return m, nil
	case tea.KeyEsc:
		m.editing = false
		m.seedInput.Blur()
		return m, nil
	case tea.KeyCtrlC:
		m.sim.record()
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.seedInput, cmd = m.seedInput.Update(msg)
	return m, cmd
}

// updateHistory forwards messages to the history view until it is closed.
func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(TickMsg); ok {
		// Keep the clock in sync but do not step while hidden.
		m.lastTick = time.Time(tick)
		return m, tickCmd(m.config.TickRate)
	}
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.screen.Resize(wsm.Width, core.Max(wsm.Height-footerLines, 1))
		m.help.Width = wsm.Width
	}

	next, cmd := m.history.Update(msg)
	if h, ok := next.(HistoryModel); ok {
		m.history = h
	}
	switch {
	case m.history.IsQuitting():
		m.sim.record()
		m.quitting = true
		return m, tea.Quit
	case m.history.IsGoingBack():
		m.showHistory = false
		return m, nil
	}
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-footerLines, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies the input collected since the last tick and feeds the
// elapsed time to the simulation clock.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	for _, a := range m.inputFrame.Actions() {
		m.apply(a)
	}
	m.inputFrame.Clear()

	m.sim.clock.Advance(m.sim.engine(), dt)

	return m, tickCmd(m.config.TickRate)
}

// apply performs a single action against the simulation.
func (m *Model) apply(a core.Action) {
	g := m.sim.engine().Grid()

	switch a {
	case core.ActionUp:
		m.moveCursor(0, -1, g)
	case core.ActionDown:
		m.moveCursor(0, 1, g)
	case core.ActionLeft:
		m.moveCursor(-1, 0, g)
	case core.ActionRight:
		m.moveCursor(1, 0, g)
	case core.ActionToggleCell:
		m.sim.controller.ToggleCell(m.cursor.X, m.cursor.Y)
	case core.ActionToggleRun:
		if m.sim.controller.Toggle() {
			m.status = "running"
		} else {
			m.status = "paused"
		}
	case core.ActionStep:
		if res := m.sim.engine().Step(); !res.Advanced {
			m.status = "nothing left alive"
		}
	case core.ActionReset:
		m.sim.reset()
		m.cursor = m.sim.controller.Center()
		m.status = "reset"
	case core.ActionFaster:
		m.sim.clock.SetSpeed(m.sim.clock.Speed().Faster())
		m.status = "speed " + m.sim.clock.Speed().String()
	case core.ActionSlower:
		m.sim.clock.SetSpeed(m.sim.clock.Speed().Slower())
		m.status = "speed " + m.sim.clock.Speed().String()
	case core.ActionNewSeed:
		v := m.sim.randomSeed()
		m.cursor = m.sim.controller.Center()
		m.status = fmt.Sprintf("seed %d", v)
	case core.ActionDenser:
		p := m.sim.adjustProbability(probabilityStep)
		m.status = fmt.Sprintf("probability %.2f on reset", p)
	case core.ActionSparser:
		p := m.sim.adjustProbability(-probabilityStep)
		m.status = fmt.Sprintf("probability %.2f on reset", p)
	case core.ActionBounds:
		m.showBounds = !m.showBounds
	}
}

func (m *Model) moveCursor(dx, dy int, g *life.Grid) {
	m.cursor.X = core.Clamp(m.cursor.X+dx, 0, g.Width()-1)
	m.cursor.Y = core.Clamp(m.cursor.Y+dy, 0, g.Height()-1)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View()
	}

	drawSimulation(m.screen, m.frame())
	out := RenderScreen(m.screen)

	footer := ""
	if m.editing {
		footer = m.seedInput.View()
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return out + "\n" + footer + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// frame captures what drawSimulation needs from the model.
func (m Model) frame() simFrame {
	f := simFrame{
		grid:    m.sim.engine().Grid(),
		stats:   m.sim.stats,
		running: m.sim.running,
		header:  m.sim.describe(),
		cursor:  m.cursor,
		status:  m.status,
	}
	if m.sim.probability != m.sim.mapProbability {
		f.header += fmt.Sprintf(" (next p %.2f)", m.sim.probability)
	}
	if m.showBounds {
		f.bounds, f.hasBounds = m.sim.engine().Bounds()
	}
	return f
}

// Run starts the Bubble Tea program for the simulation.
func Run(cfg config.LifeConfig, store *storage.Store, logger *log.Logger, rt core.RuntimeConfig) error {
	model, err := NewModel(cfg, store, logger, rt)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
