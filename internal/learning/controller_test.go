package learning

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawstats/internal/evaluator"
	"github.com/lox/drawstats/internal/lottery"
	"github.com/lox/drawstats/internal/strategy"
)

func history(n int) []lottery.Draw {
	draws := make([]lottery.Draw, n)
	for i := range draws {
		draws[i] = lottery.Draw{
			ID:    string(rune('A' + i%26)),
			Front: []int{1 + i%5, 7, 12 + i%6, 20 + i%9, 30 + i%6},
			Back:  []int{1 + i%6, 7 + i%6},
		}
	}
	return draws
}

// fixedSource always returns the same numbers and can panic on a given call.
type fixedSource struct {
	mu      sync.Mutex
	calls   int
	panicAt int
}

func (f *fixedSource) GenerateZone(_ []lottery.Draw, _ strategy.Strategy, zone lottery.Zone) []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.panicAt > 0 && f.calls == f.panicAt {
		panic("analysis exploded")
	}
	if zone == lottery.Back {
		return []int{3, 9}
	}
	return []int{4, 11, 18, 25, 32}
}

func TestController_InsufficientData(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})
	c := New(Config{Logger: logger, MinDraws: 10})

	fired := 0
	c.OnIterationComplete(func(Iteration) { fired++ })
	c.OnCompleted(func(Result) { fired++ })

	result, err := c.Start(context.Background(), history(5))
	require.ErrorIs(t, err, ErrInsufficientData)
	assert.Equal(t, Idle, result.State)
	assert.Equal(t, Idle, c.State())
	assert.Empty(t, c.Iterations())
	assert.Nil(t, c.Best())
	assert.Zero(t, fired)
	assert.Contains(t, buf.String(), "not enough draws")
}

func TestController_InvalidDrawsDoNotCount(t *testing.T) {
	draws := history(10)
	draws = append(draws, make([]lottery.Draw, 15)...) // empty draws are invalid

	c := New(Config{MinDraws: 20})
	result, err := c.Start(context.Background(), draws)
	require.ErrorIs(t, err, ErrInsufficientData)
	assert.Equal(t, 10, result.Draws)
}

func TestController_Completes(t *testing.T) {
	c := New(Config{Seed: 42})

	var seen []Iteration
	var completed []Result
	c.OnIterationComplete(func(it Iteration) { seen = append(seen, it) })
	c.OnCompleted(func(r Result) { completed = append(completed, r) })

	result, err := c.Start(context.Background(), history(50))
	require.NoError(t, err)

	assert.Equal(t, Completed, result.State)
	assert.Equal(t, Completed, c.State())
	assert.NoError(t, result.Err)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 50, result.Draws)
	require.Len(t, result.Iterations, DefaultIterations)
	assert.Len(t, seen, DefaultIterations)
	require.Len(t, completed, 1)
	assert.Equal(t, result.RunID, completed[0].RunID)

	rotation := []strategy.Strategy{strategy.Integrated, strategy.Balanced, strategy.Hot, strategy.Cold, strategy.Trend, strategy.Integrated}
	for k, it := range result.Iterations {
		assert.Equal(t, k, it.Index)
		assert.Equal(t, rotation[k], it.Strategy)
		assert.Len(t, it.Front, 5)
		assert.Len(t, it.Back, 2)
		assert.NotEqual(t, evaluator.Invalid, it.FrontEval.Rating)
		assert.InDelta(t, evaluator.Combined(it.FrontEval, it.BackEval), it.Score, 1e-9)
		assert.GreaterOrEqual(t, it.Accuracy, 0.3)
		assert.LessOrEqual(t, it.Accuracy, 0.85)
		assert.Len(t, it.Insights, 3)
		assert.Len(t, it.Metrics, 4)
	}

	require.NotNil(t, result.Best)
	for _, it := range result.Iterations {
		assert.LessOrEqual(t, it.Score, result.Best.Score)
	}
	assert.Equal(t, result.Best.Index, c.Best().Index)
	assert.Len(t, result.Insights, 3*DefaultIterations)
	assert.Equal(t, DefaultIterations, result.Summary.Count)
	assert.InDelta(t, result.Best.Score, result.Summary.Max, 1e-9)
}

func TestController_Deterministic(t *testing.T) {
	run := func() Result {
		result, err := New(Config{Seed: 7}).Start(context.Background(), history(30))
		require.NoError(t, err)
		return result
	}

	a, b := run(), run()
	require.Len(t, b.Iterations, len(a.Iterations))
	for k := range a.Iterations {
		assert.Equal(t, a.Iterations[k].Front, b.Iterations[k].Front)
		assert.Equal(t, a.Iterations[k].Back, b.Iterations[k].Back)
		assert.Equal(t, a.Iterations[k].Score, b.Iterations[k].Score)
		assert.Equal(t, a.Iterations[k].Accuracy, b.Iterations[k].Accuracy)
		assert.Equal(t, a.Iterations[k].Metrics, b.Iterations[k].Metrics)
	}
}

func TestController_BestTiesGoToEarliest(t *testing.T) {
	c := New(Config{Source: &fixedSource{}})
	result, err := c.Start(context.Background(), history(25))
	require.NoError(t, err)
	require.NotNil(t, result.Best)
	assert.Equal(t, 0, result.Best.Index)
}

func TestController_FailureKeepsPartialHistory(t *testing.T) {
	// calls 1-2 are iteration 1, call 3 is the front zone of iteration 2
	c := New(Config{Source: &fixedSource{panicAt: 3}})

	var completed Result
	c.OnCompleted(func(r Result) { completed = r })

	result, err := c.Start(context.Background(), history(25))
	require.NoError(t, err)
	assert.Equal(t, Failed, result.State)
	assert.Equal(t, Failed, c.State())
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "analysis exploded")
	assert.Len(t, result.Iterations, 1)
	require.NotNil(t, result.Best)
	assert.Equal(t, 0, result.Best.Index)
	assert.Equal(t, Failed, completed.State)
}

func TestController_CallbackPanicFailsRun(t *testing.T) {
	c := New(Config{Seed: 3})
	c.OnIterationComplete(func(it Iteration) {
		if it.Index == 1 {
			panic("host exploded")
		}
	})

	var completed []Result
	c.OnCompleted(func(r Result) { completed = append(completed, r) })

	result, err := c.Start(context.Background(), history(30))
	require.NoError(t, err)
	assert.Equal(t, Failed, result.State)
	assert.Equal(t, Failed, c.State())
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "host exploded")
	assert.Len(t, result.Iterations, 2)
	require.Len(t, completed, 1)
	assert.Equal(t, Failed, completed[0].State)

	// a failed run does not leave the controller busy
	again, err := c.Start(context.Background(), history(30))
	require.NoError(t, err)
	assert.Equal(t, Failed, again.State)
	assert.Len(t, again.Iterations, 2)
}

func TestController_CompletedCallbackPanicIsContained(t *testing.T) {
	c := New(Config{Iterations: 2})
	c.OnCompleted(func(Result) { panic("listener exploded") })

	result, err := c.Start(context.Background(), history(25))
	require.NoError(t, err)
	assert.Equal(t, Completed, result.State)
	assert.Equal(t, Completed, c.State())

	_, err = c.Start(context.Background(), history(25))
	assert.NoError(t, err)
}

func TestController_CancelBetweenIterations(t *testing.T) {
	c := New(Config{Seed: 1})
	c.OnIterationComplete(func(it Iteration) {
		if it.Index == 1 {
			c.Cancel()
		}
	})

	result, err := c.Start(context.Background(), history(30))
	require.NoError(t, err)
	assert.Equal(t, Cancelled, result.State)
	assert.Equal(t, Cancelled, c.State())
	assert.Len(t, result.Iterations, 2)
	assert.NotNil(t, result.Best)
}

func TestController_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New(Config{}).Start(ctx, history(30))
	require.NoError(t, err)
	assert.Equal(t, Cancelled, result.State)
	assert.Empty(t, result.Iterations)
	assert.Nil(t, result.Best)
}

func TestController_CancelWhileIdleIsNoop(t *testing.T) {
	c := New(Config{})
	c.Cancel()
	assert.Equal(t, Idle, c.State())
}

func TestController_RejectsConcurrentRun(t *testing.T) {
	c := New(Config{Interval: time.Hour})
	first := make(chan struct{})
	c.OnIterationComplete(func(it Iteration) {
		if it.Index == 0 {
			close(first)
		}
	})

	done := make(chan Result, 1)
	go func() {
		result, err := c.Start(context.Background(), history(30))
		assert.NoError(t, err)
		done <- result
	}()

	select {
	case <-first:
	case <-time.After(5 * time.Second):
		t.Fatal("first iteration never completed")
	}

	_, err := c.Start(context.Background(), history(30))
	require.ErrorIs(t, err, ErrAlreadyRunning)
	assert.True(t, c.State().Active())

	c.Cancel()
	select {
	case result := <-done:
		assert.Equal(t, Cancelled, result.State)
		assert.Len(t, result.Iterations, 1)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}

func TestController_IntervalPacing(t *testing.T) {
	c := New(Config{Interval: time.Millisecond, Clock: quartz.NewReal()})
	result, err := c.Start(context.Background(), history(30))
	require.NoError(t, err)
	assert.Equal(t, Completed, result.State)
	assert.Len(t, result.Iterations, DefaultIterations)
}

func TestController_TimestampsFromClock(t *testing.T) {
	mClock := quartz.NewMock(t)
	c := New(Config{Clock: mClock})

	result, err := c.Start(context.Background(), history(30))
	require.NoError(t, err)
	for _, it := range result.Iterations {
		assert.Equal(t, mClock.Now(), it.Timestamp)
	}
}

func TestController_CustomRotation(t *testing.T) {
	c := New(Config{
		Iterations: 4,
		MinDraws:   5,
		Rotation:   []strategy.Strategy{strategy.Cold, strategy.Trend},
	})

	result, err := c.Start(context.Background(), history(5))
	require.NoError(t, err)
	require.Len(t, result.Iterations, 4)
	assert.Equal(t, strategy.Cold, result.Iterations[0].Strategy)
	assert.Equal(t, strategy.Trend, result.Iterations[1].Strategy)
	assert.Equal(t, strategy.Cold, result.Iterations[2].Strategy)
	assert.Equal(t, strategy.Trend, result.Iterations[3].Strategy)
}

func TestController_Restart(t *testing.T) {
	c := New(Config{Iterations: 2})
	_, err := c.Start(context.Background(), history(25))
	require.NoError(t, err)

	result, err := c.Start(context.Background(), history(25))
	require.NoError(t, err)
	assert.Equal(t, Completed, result.State)
	assert.Len(t, c.Iterations(), 2, "a new run replaces the previous history")
}

func TestState(t *testing.T) {
	assert.True(t, Running.Active())
	assert.True(t, Iterating.Active())
	assert.False(t, Idle.Active())
	for _, s := range []State{Completed, Failed, Cancelled} {
		assert.True(t, s.Terminal(), s.String())
		assert.False(t, s.Active(), s.String())
	}
	assert.Equal(t, "cancelled", Cancelled.String())
}
