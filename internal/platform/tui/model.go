package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-tui/internal/assets"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/games/flappy"
	"github.com/vovakirdan/flappy-tui/internal/storage"
)

// Game is the simulation driven by the model.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) flappy.StepResult
	Frame() flappy.Frame
	PipesSpawned() int
}

// Model is the Bubble Tea model that runs the game.
type Model struct {
	game        Game
	art         *assets.Pack
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	keys        *KeyMapper
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	round       flappy.Round
	history     historyView
	showHistory bool
	quitting    bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game Game, art *assets.Pack, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		art:        art,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		history:    newHistoryView(store, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "title", m.game.Title(), "seed", m.config.Seed, "fps", m.config.TickRate)

	return tea.Batch(tea.SetWindowTitle(m.game.Title()), tickCmd(m.config.TickRate))
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
	if m.showHistory {
		return m.handleHistoryKey(msg)
	}

	switch m.keys.MapKeyToFrame(msg, &m.inputFrame) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHistory:
		// The panel would hide a live round.
		if m.round.Phase != flappy.PhaseFlying {
			m.showHistory = true
			m.history.Reload()
		}
	}

	return m, nil
}

// handleHistoryKey routes keys while the history panel is open.
func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHistory:
		m.showHistory = false
		return m, nil
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// handleResize processes window resize events. The world size is fixed,
// so only the rendering scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.history.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick runs one simulation step with the input gathered since the
// previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.showHistory {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	res := m.game.Step(m.inputFrame)
	m.round = res.Round

	switch {
	case res.Started:
		m.logger.Debug("round started", "best", res.Round.HighScore)
	case res.Restarted:
		m.logger.Debug("round reset", "best", res.Round.HighScore)
	}
	if res.GameOverEntered {
		m.recordRound(res)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRound journals and logs a round on the tick it ends.
func (m *Model) recordRound(res flappy.StepResult) {
	r := res.Round
	m.logger.Info("round over",
		"score", r.Score,
		"best", r.HighScore,
		"new_record", r.NewRecord,
		"cause", res.Cause,
		"ticks", r.Ticks,
	)

	if m.store == nil {
		return
	}
	id, err := m.store.SaveRound(storage.RoundRecord{
		Score:        r.Score,
		Best:         r.HighScore,
		NewRecord:    r.NewRecord,
		Cause:        res.Cause.String(),
		Ticks:        r.Ticks,
		PipesSpawned: m.game.PipesSpawned(),
	})
	if err != nil {
		// The game goes on without the journal entry.
		m.logger.Warn("could not journal round", "error", err)
		return
	}
	m.logger.Debug("round journaled", "id", id)
}

// Round returns the round state as of the last tick.
func (m Model) Round() flappy.Round {
	return m.round
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View()
	}

	flappy.RenderFrame(m.screen, m.game.Frame(), m.art)
	if m.config.Plain {
		return m.screen.String()
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game Game, art *assets.Pack, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, art, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
