package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lox/drawstats/internal/learning"
)

type LearnCmd struct {
	Iterations int    `short:"n" help:"Number of iterations (overrides config)"`
	Interval   string `help:"Pause between iterations, e.g. 500ms (overrides config)"`
	Insights   bool   `help:"Print the insight log when the run ends"`
}

func (c *LearnCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	if c.Iterations > 0 {
		s.config.Learning.Iterations = c.Iterations
	}
	if c.Interval != "" {
		s.config.Learning.Interval = c.Interval
	}

	cfg, err := s.config.LearningConfig()
	if err != nil {
		return err
	}
	cfg.Logger = s.logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	controller := learning.New(cfg)
	controller.OnIterationComplete(func(it learning.Iteration) {
		printIteration(os.Stdout, it, cfg.Iterations)
	})

	result, err := controller.Start(ctx, s.history.Draws)
	if err != nil {
		return err
	}
	printResult(os.Stdout, result, c.Insights)
	return result.Err
}

func printIteration(out io.Writer, it learning.Iteration, total int) {
	fmt.Fprintf(out, "%s %-20s %s  %s %.0f%%\n",
		labelStyle.Render(fmt.Sprintf("[%d/%d]", it.Index+1, total)),
		it.Strategy.Title(),
		combination(it.Front, it.Back),
		rating(it.FrontEval),
		it.Accuracy*100)
}

func printResult(out io.Writer, r learning.Result, insights bool) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, title(fmt.Sprintf(" Learning %s ", r.State)))
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("run"), r.RunID)
	if r.Err != nil {
		fmt.Fprintf(out, "%s %v\n", labelStyle.Render("error"), r.Err)
	}
	if r.Best == nil {
		return
	}

	fmt.Fprintf(out, "%s %s (%s, iteration %d)\n",
		headerStyle.Render("Best"), combination(r.Best.Front, r.Best.Back), r.Best.Strategy.Title(), r.Best.Index+1)
	fmt.Fprintf(out, "%s %.1f  %s %.1f ± %.1f  %s [%.1f, %.1f]\n",
		labelStyle.Render("score"), r.Best.Score,
		labelStyle.Render("mean"), r.Summary.Mean, r.Summary.StdDev,
		labelStyle.Render("95% CI"), r.Summary.Low95, r.Summary.High95)
	fmt.Fprintf(out, "%s %.1f  %s %d excellent, %d good, %d fair, %d needs work\n",
		labelStyle.Render("p90"), r.Summary.P90,
		labelStyle.Render("ratings"), r.Summary.Excellent, r.Summary.Good, r.Summary.Fair, r.Summary.NeedsWork)

	for _, m := range r.Best.Metrics {
		fmt.Fprintf(out, "  %s %6.1f %+5.1f %s\n", labelStyle.Render(fmt.Sprintf("%-10s", m.Name)), m.Value, m.Change, m.Trend)
	}

	if insights {
		fmt.Fprintln(out)
		for _, line := range r.Insights {
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("-"), line)
		}
	}
}
