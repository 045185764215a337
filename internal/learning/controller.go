// Package learning drives repeated strategy generation and evaluation over
// a draw history and keeps the best-scoring result.
//
// A Controller runs one learning pass at a time. Each iteration picks the
// next strategy from a rotation, generates and evaluates front and back
// combinations, and reports an Iteration to registered callbacks before the
// next one starts. Runs can be cancelled between iterations.
package learning

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/drawstats/internal/evaluator"
	"github.com/lox/drawstats/internal/insight"
	"github.com/lox/drawstats/internal/lottery"
	"github.com/lox/drawstats/internal/randutil"
	"github.com/lox/drawstats/internal/statistics"
	"github.com/lox/drawstats/internal/strategy"
)

var (
	// ErrInsufficientData is returned by Start when the history holds fewer
	// valid draws than Config.MinDraws.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrAlreadyRunning is returned by Start while another run is active.
	ErrAlreadyRunning = errors.New("learning run already in progress")
)

// Defaults applied to zero Config fields.
const (
	DefaultIterations = 6
	DefaultMinDraws   = 20
)

// CandidateSource produces candidate numbers for a strategy.
// *strategy.Generator satisfies it.
type CandidateSource interface {
	GenerateZone(draws []lottery.Draw, s strategy.Strategy, zone lottery.Zone) []int
}

// Config holds configuration for a Controller
type Config struct {
	Iterations int
	MinDraws   int
	Rotation   []strategy.Strategy
	Interval   time.Duration // pause between iterations
	Seed       int64
	Logger     *log.Logger
	Clock      quartz.Clock

	// Source overrides the strategy generator. When nil each run builds a
	// generator seeded from Seed.
	Source CandidateSource
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Iterations: DefaultIterations,
		MinDraws:   DefaultMinDraws,
		Rotation:   append([]strategy.Strategy(nil), strategy.All...),
	}
}

// Iteration is the record of one learning step.
type Iteration struct {
	Index     int // 0-based
	Strategy  strategy.Strategy
	Front     []int
	Back      []int
	FrontEval evaluator.Evaluation
	BackEval  evaluator.Evaluation
	Score     float64 // front/back weighted
	Accuracy  float64 // simulated, 0..0.85
	Insights  []string
	Metrics   []Metric
	Timestamp time.Time
}

// Result is the outcome of a run. Iterations completed before a failure or
// cancellation are always kept.
type Result struct {
	RunID      string
	State      State
	Draws      int
	Iterations []Iteration
	Best       *Iteration
	Summary    statistics.Summary
	Insights   []string
	Err        error
}

// Controller runs learning passes. Its methods are safe for concurrent use.
type Controller struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock

	mu          sync.Mutex
	state       State
	iterations  []Iteration
	best        int
	cancel      context.CancelFunc
	onIteration []func(Iteration)
	onCompleted []func(Result)
}

// New creates a controller, filling zero Config fields with defaults.
func New(config Config) *Controller {
	defaults := DefaultConfig()
	if config.Iterations <= 0 {
		config.Iterations = defaults.Iterations
	}
	if config.MinDraws <= 0 {
		config.MinDraws = defaults.MinDraws
	}
	if len(config.Rotation) == 0 {
		config.Rotation = defaults.Rotation
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}

	return &Controller{
		config: config,
		logger: config.Logger.WithPrefix("learning"),
		clock:  config.Clock,
		best:   -1,
	}
}

// OnIterationComplete registers fn to receive every finished iteration.
func (c *Controller) OnIterationComplete(fn func(Iteration)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onIteration = append(c.onIteration, fn)
}

// OnCompleted registers fn to receive the result of every run that
// reaches a terminal state (completed, failed or cancelled).
func (c *Controller) OnCompleted(fn func(Result)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onCompleted = append(c.onCompleted, fn)
}

// State returns the controller's current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Iterations returns the iterations of the current or last run.
func (c *Controller) Iterations() []Iteration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Iteration(nil), c.iterations...)
}

// Best returns the highest-scoring iteration so far, or nil.
func (c *Controller) Best() *Iteration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.best < 0 {
		return nil
	}
	best := c.iterations[c.best]
	return &best
}

// Cancel stops the active run before its next iteration. It is a no-op when
// nothing is running.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
}

// Start runs a learning pass over draws and blocks until it ends. It
// returns an error only when the run is refused; failures and cancellation
// during the run are reported through Result.State and Result.Err.
func (c *Controller) Start(ctx context.Context, draws []lottery.Draw) (Result, error) {
	valid := make([]lottery.Draw, 0, len(draws))
	for _, d := range draws {
		if lottery.IsValid(d) {
			valid = append(valid, d)
		}
	}

	c.mu.Lock()
	if c.state.Active() {
		state := c.state
		c.mu.Unlock()
		return Result{State: state}, ErrAlreadyRunning
	}
	if len(valid) < c.config.MinDraws {
		state := c.state
		c.mu.Unlock()
		c.logger.Warn("not enough draws to start learning", "valid", len(valid), "required", c.config.MinDraws)
		return Result{State: state, Draws: len(valid)},
			fmt.Errorf("%w: need at least %d draws, have %d", ErrInsufficientData, c.config.MinDraws, len(valid))
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.state = Running
	c.iterations = nil
	c.best = -1
	c.cancel = cancel
	c.mu.Unlock()

	runID := newRunID()
	logger := c.logger.With("run", runID)
	logger.Info("learning started", "draws", len(valid), "dropped", len(draws)-len(valid), "iterations", c.config.Iterations)

	rng := randutil.New(c.config.Seed)
	source := c.config.Source
	if source == nil {
		source = strategy.NewGenerator(randutil.Derive(rng))
	}
	metrics := newMetricTracker(randutil.Derive(rng))
	stats := &statistics.Statistics{}
	var insights []string

	state, runErr := Completed, error(nil)
	for k := 0; k < c.config.Iterations; k++ {
		if err := c.pause(runCtx, k); err != nil {
			state = Cancelled
			break
		}

		c.setState(Iterating)
		it, err := c.iterate(k, valid, source, rng, metrics)
		if err != nil {
			logger.Error("learning iteration failed", "iteration", k+1, "error", err)
			state, runErr = Failed, err
			break
		}

		c.mu.Lock()
		c.iterations = append(c.iterations, it)
		if c.best < 0 || it.Score > c.iterations[c.best].Score {
			c.best = len(c.iterations) - 1
		}
		c.state = Running
		callbacks := append([]func(Iteration)(nil), c.onIteration...)
		c.mu.Unlock()

		stats.Add(it.Score)
		insights = append(insights, it.Insights...)
		logger.Debug("iteration complete", "iteration", k+1, "strategy", it.Strategy, "score", it.Score, "accuracy", it.Accuracy)

		if err := notify(callbacks, it); err != nil {
			logger.Error("iteration callback failed", "iteration", k+1, "error", err)
			state, runErr = Failed, err
			break
		}
	}

	if err := stats.Validate(); err != nil {
		logger.Warn("score statistics inconsistent", "error", err)
	}

	c.mu.Lock()
	c.state = state
	c.cancel = nil
	result := Result{
		RunID:      runID,
		State:      state,
		Draws:      len(valid),
		Iterations: append([]Iteration(nil), c.iterations...),
		Summary:    stats.Summarize(),
		Insights:   insights,
		Err:        runErr,
	}
	if c.best >= 0 {
		best := c.iterations[c.best]
		result.Best = &best
	}
	callbacks := append([]func(Result)(nil), c.onCompleted...)
	c.mu.Unlock()

	switch state {
	case Completed:
		logger.Info("learning completed", "best_score", result.Summary.Max, "mean_score", result.Summary.Mean)
	case Cancelled:
		logger.Info("learning cancelled", "iterations", len(result.Iterations))
	case Failed:
		logger.Warn("learning failed", "iterations", len(result.Iterations), "error", runErr)
	}

	if err := notify(callbacks, result); err != nil {
		logger.Error("completion callback failed", "error", err)
	}
	return result, nil
}

// notify calls every fn with v, turning a panic into an error.
func notify[T any](fns []func(T), v T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("callback: %v", r)
		}
	}()
	for _, fn := range fns {
		fn(v)
	}
	return nil
}

// pause is the cancellation point between iterations. After the first
// iteration it also waits Config.Interval on the controller's clock.
func (c *Controller) pause(ctx context.Context, k int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if k == 0 || c.config.Interval <= 0 {
		return nil
	}

	timer := c.clock.NewTimer(c.config.Interval, "learning", "interval")
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// iterate performs step k. A panic anywhere inside is converted to an error.
func (c *Controller) iterate(k int, draws []lottery.Draw, source CandidateSource, rng *rand.Rand, metrics *metricTracker) (it Iteration, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("iteration %d: %v", k+1, r)
		}
	}()

	s := c.config.Rotation[k%len(c.config.Rotation)]
	front := source.GenerateZone(draws, s, lottery.Front)
	back := source.GenerateZone(draws, s, lottery.Back)

	frontEval := evaluator.Evaluate(front, draws, lottery.Front)
	backEval := evaluator.Evaluate(back, draws, lottery.Back)
	score := evaluator.Combined(frontEval, backEval)
	accuracy := simulatedAccuracy(k+1, c.config.Iterations, rng)

	return Iteration{
		Index:     k,
		Strategy:  s,
		Front:     front,
		Back:      back,
		FrontEval: frontEval,
		BackEval:  backEval,
		Score:     score,
		Accuracy:  accuracy,
		Insights:  insight.ForIteration(k+1, s, insight.StatsOf(front)),
		Metrics:   metrics.update(accuracy, score),
		Timestamp: c.clock.Now("learning", "iteration"),
	}, nil
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
