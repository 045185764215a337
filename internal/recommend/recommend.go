// Package recommend produces one scored recommendation per strategy.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/drawstats/internal/evaluator"
	"github.com/lox/drawstats/internal/insight"
	"github.com/lox/drawstats/internal/lottery"
	"github.com/lox/drawstats/internal/randutil"
	"github.com/lox/drawstats/internal/strategy"
)

// DefaultMinDraws is the smallest history recommendations are built from.
const DefaultMinDraws = 10

// ErrInsufficientData is returned when the history is shorter than MinDraws.
var ErrInsufficientData = errors.New("insufficient data")

// Config holds configuration for Generate.
type Config struct {
	Strategies []strategy.Strategy // defaults to strategy.All
	MinDraws   int
	Seed       int64
	Logger     *log.Logger
}

// Recommendation is one strategy's candidate with its scores.
type Recommendation struct {
	Strategy   strategy.Strategy
	Front      []int
	Back       []int
	FrontEval  evaluator.Evaluation
	BackEval   evaluator.Evaluation
	Confidence float64 // front/back weighted score
	Insights   []string
}

// Generate builds a recommendation for every configured strategy in
// parallel and returns them by confidence, highest first. Each strategy
// gets its own generator derived from Seed, so results do not depend on
// scheduling.
func Generate(ctx context.Context, draws []lottery.Draw, config Config) ([]Recommendation, error) {
	if config.MinDraws <= 0 {
		config.MinDraws = DefaultMinDraws
	}
	strategies := config.Strategies
	if len(strategies) == 0 {
		strategies = strategy.All
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	logger := config.Logger.WithPrefix("recommend")

	if len(draws) < config.MinDraws {
		logger.Warn("not enough draws to recommend", "valid", len(draws), "required", config.MinDraws)
		return nil, fmt.Errorf("%w: need at least %d draws, have %d", ErrInsufficientData, config.MinDraws, len(draws))
	}

	master := randutil.New(config.Seed)
	seeds := make([]int64, len(strategies))
	for i := range seeds {
		seeds[i] = master.Int64()
	}

	recs := make([]Recommendation, len(strategies))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range strategies {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			recs[i] = build(draws, s, strategy.NewGenerator(randutil.New(seeds[i])))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Confidence > recs[j].Confidence
	})
	logger.Debug("recommendations ready", "strategies", len(recs), "best", recs[0].Strategy, "confidence", recs[0].Confidence)
	return recs, nil
}

func build(draws []lottery.Draw, s strategy.Strategy, gen *strategy.Generator) Recommendation {
	front := gen.GenerateZone(draws, s, lottery.Front)
	back := gen.GenerateZone(draws, s, lottery.Back)
	frontEval := evaluator.Evaluate(front, draws, lottery.Front)
	backEval := evaluator.Evaluate(back, draws, lottery.Back)

	return Recommendation{
		Strategy:   s,
		Front:      front,
		Back:       back,
		FrontEval:  frontEval,
		BackEval:   backEval,
		Confidence: evaluator.Combined(frontEval, backEval),
		Insights:   insight.ForStrategy(s, insight.StatsOf(front)),
	}
}
