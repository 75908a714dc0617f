// Package strike implements Shadow Strike, a side-scrolling runner where the
// player jumps over obstacles and throws shuriken at incoming enemies.
//
// Game is the session state machine: it owns the simulation, the difficulty
// controller and the high score, and moves between menu, playing and game
// over. It has no terminal dependencies; the platform feeds it input frames
// and renders it into a core.Screen.
package strike

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shadow-strike/internal/config"
	"github.com/vovakirdan/shadow-strike/internal/core"
	"github.com/vovakirdan/shadow-strike/internal/difficulty"
	"github.com/vovakirdan/shadow-strike/internal/sim"
)

// ID is the identifier used for score history.
const ID = "strike"

// HighScoreStore reads and writes the persisted high score.
type HighScoreStore interface {
	LoadHighScore(key string) (int, error)
	SaveHighScore(key string, score int) error
}

// Game implements the Shadow Strike session.
type Game struct {
	cfg        config.StrikeConfig
	phase      core.Phase
	state      *sim.State
	controller *difficulty.Controller
	store      HighScoreStore
	logger     *log.Logger

	highScore    int
	seed         int64
	games        int64
	sinceRefresh time.Duration // Simulated time since the last difficulty request
	cause        sim.Cause     // What ended the last game
}

// Option configures a Game.
type Option func(*Game)

// WithStore sets where the high score is loaded from and saved to.
func WithStore(s HighScoreStore) Option {
	return func(g *Game) {
		g.store = s
	}
}

// WithLogger sets the logger for session events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSeed sets the seed of the first game. Each restart uses the next seed.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// New creates a game in the menu phase. The high score is read from the
// store once; a missing store or a read error counts as zero.
func New(cfg config.StrikeConfig, s difficulty.Suggester, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		phase:  core.PhaseMenu,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.state = sim.NewState(cfg, g.seed)
	g.controller = difficulty.NewController(s,
		difficulty.WithTimeout(cfg.Difficulty.Timeout),
		difficulty.WithKeepOnError(cfg.Difficulty.KeepOnError),
		difficulty.WithLogger(g.logger),
	)

	if g.store != nil {
		high, err := g.store.LoadHighScore(cfg.Scoring.HighScoreKey)
		if err != nil {
			g.logger.Warn("cannot load high score", "error", err)
			high = 0
		}
		g.highScore = max(high, 0)
	}

	return g
}

// ID returns the identifier used for score history.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Shadow Strike"
}

// Start begins a new game from the menu or after game over.
// Returns false if a game is already being played.
func (g *Game) Start() bool {
	if g.phase == core.PhasePlaying {
		return false
	}

	g.state.Reset(g.seed + g.games)
	g.games++
	g.sinceRefresh = 0
	g.cause = sim.CauseNone
	g.controller.Start()
	g.phase = core.PhasePlaying

	g.logger.Debug("game started", "game", g.games, "high_score", g.highScore)
	return true
}

// Jump makes the player jump. It has no effect outside of play or while
// the player is airborne.
func (g *Game) Jump() bool {
	if g.phase != core.PhasePlaying {
		return false
	}
	return g.state.Jump()
}

// Shoot throws a projectile. It has no effect outside of play.
func (g *Game) Shoot() bool {
	if g.phase != core.PhasePlaying {
		return false
	}
	g.state.Shoot()
	return true
}

// Step applies the frame's actions and, while playing, advances the
// simulation by the frame's elapsed time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionStart) {
		g.Start()
	}

	if g.phase != core.PhasePlaying {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.Jump()
	}
	if in.Has(core.ActionShoot) {
		g.Shoot()
	}

	outcome := g.state.Tick(in.Elapsed, g.controller.Params())
	if outcome.Fatal {
		g.end(outcome.Cause)
		return core.StepResult{State: g.State()}
	}

	if in.Elapsed > 0 {
		g.sinceRefresh += in.Elapsed
	}
	if g.sinceRefresh >= g.cfg.Difficulty.RefreshInterval {
		g.sinceRefresh = 0
		g.controller.Request(g.state.Score)
	}

	return core.StepResult{State: g.State()}
}

// end moves to game over, stops the difficulty refresh and saves a beaten
// high score. Store errors are logged and dropped.
func (g *Game) end(cause sim.Cause) {
	g.phase = core.PhaseGameOver
	g.cause = cause
	g.controller.Stop()

	score := g.state.Score
	g.logger.Info("game over", "score", score, "cause", cause, "high_score", g.highScore)

	if score <= g.highScore {
		return
	}
	g.highScore = score
	if g.store == nil {
		return
	}
	if err := g.store.SaveHighScore(g.cfg.Scoring.HighScoreKey, score); err != nil {
		g.logger.Warn("cannot save high score", "score", score, "error", err)
	}
}

// State returns the externally visible session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.phase,
		Score:     g.state.Score,
		HighScore: g.highScore,
	}
}

// Params returns the difficulty currently applied to the simulation.
func (g *Game) Params() config.Params {
	return g.controller.Params()
}

// Cause returns what ended the last game, or sim.CauseNone.
func (g *Game) Cause() sim.Cause {
	return g.cause
}

// Close stops the difficulty refresh and waits for an in-flight request
// to return.
func (g *Game) Close() {
	g.controller.Stop()
	g.controller.Wait()
}
