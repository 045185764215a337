package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/drawstats/internal/evaluator"
	"github.com/lox/drawstats/internal/lottery"
)

type EvaluateCmd struct {
	Front string `arg:"" help:"Front numbers, e.g. '3,9,17,24,31'"`
	Back  string `arg:"" optional:"" help:"Back numbers, e.g. '2,11'"`
}

func (c *EvaluateCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}

	front, err := parseNumbers(c.Front)
	if err != nil {
		return fmt.Errorf("front: %w", err)
	}
	back, err := parseNumbers(c.Back)
	if err != nil {
		return fmt.Errorf("back: %w", err)
	}

	frontEval := evaluator.Evaluate(front, s.history.Draws, lottery.Front)
	printEvaluation(os.Stdout, lottery.Front, front, frontEval)
	if len(back) == 0 {
		return nil
	}

	backEval := evaluator.Evaluate(back, s.history.Draws, lottery.Back)
	printEvaluation(os.Stdout, lottery.Back, back, backEval)
	fmt.Fprintf(os.Stdout, "%s %.1f\n", headerStyle.Render("Combined"), evaluator.Combined(frontEval, backEval))
	return nil
}

func printEvaluation(out io.Writer, zone lottery.Zone, numbers []int, e evaluator.Evaluation) {
	fmt.Fprintf(out, "%s %s  %s\n", headerStyle.Render(zone.String()), balls(numbers, zone), rating(e))
	fmt.Fprintf(out, "  %s\n", e.Details)
	if e.Rating == evaluator.Invalid {
		fmt.Fprintf(out, "  %s\n\n", labelStyle.Render("numbers must be distinct and within range"))
		return
	}
	fmt.Fprintf(out, "  %s %5.1f\n", labelStyle.Render("frequency"), e.FrequencyScore)
	fmt.Fprintf(out, "  %s   %5.1f\n", labelStyle.Render("balance"), e.BalanceScore)
	fmt.Fprintf(out, "  %s     %5.1f\n", labelStyle.Render("trend"), e.TrendScore)
	fmt.Fprintf(out, "  %s %5.1f\n\n", labelStyle.Render("diversity"), e.DiversityScore)
}
