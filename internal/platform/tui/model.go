package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shadow-strike/internal/core"
	"github.com/vovakirdan/shadow-strike/internal/games/strike"
)

// ScoreRecorder appends finished games to the score history.
type ScoreRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Model is the Bubble Tea model running one Shadow Strike session.
type Model struct {
	game       *strike.Game
	screen     *core.Screen
	scores     ScoreRecorder
	logger     *log.Logger
	tickRate   int
	keys       *KeyMapper
	inputFrame core.InputFrame
	lastTick   time.Time
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the current game over has been recorded
}

// NewModel creates a model for game drawn on a width x height terminal.
// scores and logger may be nil.
func NewModel(game *strike.Game, scores ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		scores:     scores,
		logger:     logger,
		tickRate:   cfg.TickRate,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
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
		if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			m.game.Close()
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		// Playfield scales to the window
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick advances the game by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.Elapsed = frameElapsed(m.lastTick, now, m.tickRate)
	m.lastTick = now

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver() {
		if !m.scoreSaved && m.gameState.Score > 0 && m.scores != nil {
			if _, err := m.scores.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
				m.logger.Warn("cannot record score", "score", m.gameState.Score, "error", err)
			}
		}
		m.scoreSaved = true
	} else {
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the session state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game and blocks until the player quits.
func Run(game *strike.Game, scores ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, scores, logger, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	game.Close()
	return err
}
