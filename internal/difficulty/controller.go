package difficulty

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shadow-strike/internal/config"
)

// Controller owns the shared difficulty parameters. It is the only writer;
// readers call Params, which never blocks.
//
// Requests are grouped into epochs. Start opens an epoch and Stop closes it;
// a suggestion that completes after its epoch was closed is dropped.
type Controller struct {
	suggester   Suggester
	timeout     time.Duration
	keepOnError bool
	logger      *log.Logger

	params atomic.Pointer[config.Params]

	mu       sync.Mutex
	epoch    uint64
	running  bool
	inFlight bool
	cancel   context.CancelFunc
	ctx      context.Context
	wg       sync.WaitGroup
}

// Option configures a Controller.
type Option func(*Controller)

// WithTimeout bounds each suggestion request.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger for refresh results and failures.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithKeepOnError keeps the last parameters when a request fails instead of
// falling back to the floor.
func WithKeepOnError(keep bool) Option {
	return func(c *Controller) {
		c.keepOnError = keep
	}
}

// NewController creates a stopped controller publishing floor parameters.
func NewController(s Suggester, opts ...Option) *Controller {
	c := &Controller{
		suggester: s,
		timeout:   2 * time.Second,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.store(config.FloorParams())
	return c
}

// Params returns the current difficulty parameters.
func (c *Controller) Params() config.Params {
	return *c.params.Load()
}

func (c *Controller) store(p config.Params) {
	c.params.Store(&p)
}

// Start opens a new epoch and resets the parameters to the floor.
// Any request from a previous epoch is discarded.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.epoch++
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.running = true
	c.store(config.FloorParams())
}

// Stop closes the current epoch and cancels an in-flight request.
// Parameters keep their last value.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Controller) stopLocked() {
	if !c.running {
		return
	}
	c.running = false
	c.inFlight = false
	c.epoch++
	c.cancel()
}

// Request asks the suggester for parameters for score in the background.
// It returns false without doing anything if the controller is stopped or
// a request is already in flight.
func (c *Controller) Request(score int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.inFlight {
		return false
	}
	c.inFlight = true

	c.wg.Add(1)
	go c.refresh(c.ctx, c.epoch, score)
	return true
}

// Wait blocks until every request started so far has finished.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) refresh(ctx context.Context, epoch uint64, score int) {
	defer c.wg.Done()

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	suggestion, err := c.suggester.Suggest(reqCtx, score)

	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch {
		c.logger.Debug("discarding stale difficulty suggestion", "score", score)
		return
	}
	c.inFlight = false

	if err != nil {
		c.logger.Warn("difficulty suggestion failed", "score", score, "error", err)
		if c.keepOnError {
			return
		}
		c.store(config.FloorParams())
		return
	}

	p := Resolve(suggestion)
	c.store(p)
	c.logger.Debug("difficulty updated",
		"score", score,
		"spawn_rate", p.EnemySpawnRate,
		"complexity", p.ObstacleComplexity,
		"speed", p.GameSpeedMultiplier,
	)
}
