package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/endless-dodge/internal/core"
	"github.com/vovakirdan/endless-dodge/internal/dodge"
	"github.com/vovakirdan/endless-dodge/internal/storage"
)

// holdTicks is how many simulation ticks a movement key stays "held" after a
// press. Terminals have no key-up events; key repeat refreshes the window,
// so holding a key reads as continuously held while a single tap gives a
// short nudge.
const holdTicks = 6

// Model is the Bubble Tea model that drives the game loop: it polls input,
// measures the frame delta, ticks the simulation, and renders, in that order,
// once per frame.
type Model struct {
	game   *dodge.Game
	screen *core.Screen
	store  *storage.Store // run history, may be nil
	config core.RuntimeConfig

	intents   core.Intents
	holdLeft  int
	holdRight int

	lastTick time.Time
	runSaved bool
	quitting bool
}

// NewModel creates the game loop model.
func NewModel(game *dodge.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.config.TickRate),
		tea.SetWindowTitle(m.windowTitle()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps key presses to intents. Directional keys open a short hold
// window; the other keys are edge-triggered events consumed on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch NewKeyMapper().MapKey(msg) {
	case ActionQuit:
		// The quit signal ends the loop after the current frame's work.
		m.quitting = true
		return m, tea.Quit
	case ActionLeft:
		m.holdLeft = holdTicks
	case ActionRight:
		m.holdRight = holdTicks
	case ActionConfirm:
		m.intents.ConfirmPressed = true
	case ActionPause:
		m.intents.PausePressed = true
	}
	return m, nil
}

// handleTick runs one frame: measure dt, tick the simulation, record the run
// if it just ended, and refresh the window title.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.intents.MoveLeftHeld = m.holdLeft > 0
	m.intents.MoveRightHeld = m.holdRight > 0
	if m.holdLeft > 0 {
		m.holdLeft--
	}
	if m.holdRight > 0 {
		m.holdRight--
	}

	m.game.Tick(dt, m.intents)
	m.intents.ClearPressed()

	m.recordRun()

	return m, tea.Batch(
		tickCmd(m.config.TickRate),
		tea.SetWindowTitle(m.windowTitle()),
	)
}

// recordRun appends the finished run to the history database, once per game
// over. The high-score file is the simulation's own concern; this is
// platform-level bookkeeping and best-effort.
func (m *Model) recordRun() {
	snap := m.game.Snapshot()

	if snap.State != dodge.StateGameOver {
		m.runSaved = false
		return
	}
	if m.runSaved || m.store == nil {
		return
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(snap.Score, snap.Elapsed, snap.Dodged)
	m.runSaved = true
}

// windowTitle formats the informational title refreshed once per frame.
func (m Model) windowTitle() string {
	snap := m.game.Snapshot()
	return fmt.Sprintf("%s - Score: %d  High: %d  [%s]",
		m.game.Title(), snap.Score, snap.HighScore, snap.State)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(game *dodge.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
