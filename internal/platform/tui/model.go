package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Model is the Bubble Tea host for one runner session.
//
// Key presses are stamped with wall-clock time and queued; every tick the
// queued presses and the real time since the previous tick go to the game.
// Each finished run is written to the journal once, with its events.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	runEvents  []core.Event // Events of the current run
	lastTick   time.Time
	now        func() time.Time
	journal    *JournalModel
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(os.Stderr)
		logger.SetLevel(log.FatalLevel)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init starts the tick loop. The game is reset to idle here.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("session ready", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.journal != nil {
		return m.updateJournal(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		if !m.gameState.Paused && m.gameState.Phase == core.PhaseRunning {
			return m, nil
		}
		j := NewJournalModel(m.store, m.game.ID(), m.config.ScreenW, m.config.ScreenH)
		m.journal = &j
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.now()) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// updateJournal forwards messages to the journal overlay while it is open.
// The game keeps receiving ticks so wall time does not pile up.
func (m Model) updateJournal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t, ok := msg.(TickMsg); ok {
		m.lastTick = time.Time(t)
		return m, tickCmd(m.config.TickRate)
	}
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.screen.Resize(wsm.Width, wsm.Height)
	}

	next, cmd := m.journal.Update(msg)
	j := next.(JournalModel)
	switch {
	case j.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case j.IsGoingBack():
		m.journal = nil
		return m, nil
	}
	m.journal = &j
	return m, cmd
}

// handleResize processes window resize events. The game scales its view to
// the screen, so a resize never resets the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick feeds the elapsed wall time and queued presses to the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var delta time.Duration
	if !m.lastTick.IsZero() {
		delta = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Advance(delta, m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, e := range result.Events {
		m.recordEvent(e)
	}

	return m, tickCmd(m.config.TickRate)
}

// recordEvent collects the current run's events and journals the run when
// it ends. Journal failures never interrupt play.
func (m *Model) recordEvent(e core.Event) {
	if e.Kind == core.EventStarted {
		m.runEvents = m.runEvents[:0]
	}
	m.runEvents = append(m.runEvents, e)

	switch e.Kind {
	case core.EventStarted:
		m.logger.Debug("run started", "game", m.game.ID(), "run", m.game.Summary().Run)
	case core.EventDied:
		sum := m.game.Summary()
		m.logger.Info("run ended", "run", sum.Run, "score", sum.Score, "distance", int(sum.Distance))
		if m.store == nil {
			return
		}
		id, err := m.store.SaveRun(m.game.ID(), sum, m.runEvents)
		if err != nil {
			m.logger.Warn("could not journal run", "error", err)
			return
		}
		m.logger.Debug("run journaled", "id", id, "events", len(m.runEvents))
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.journal != nil {
		return m.journal.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
