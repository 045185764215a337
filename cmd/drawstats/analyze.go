package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/lox/drawstats/internal/analysis"
	"github.com/lox/drawstats/internal/lottery"
)

type AnalyzeCmd struct {
	Top int `default:"10" help:"Frequency rows to show per zone"`
}

func (c *AnalyzeCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	printAnalysis(os.Stdout, analysis.Analyze(s.history.Draws), c.Top)
	return nil
}

func printAnalysis(out io.Writer, snap analysis.Snapshot, top int) {
	fmt.Fprintln(out, title(fmt.Sprintf(" Analysis of %d draws ", snap.Draws)))
	fmt.Fprintln(out)

	for _, zone := range []lottery.Zone{lottery.Front, lottery.Back} {
		freqs := snap.Frequency(zone)
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%s zone frequency", zone)))

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Number\tCount\tShare\tLast seen\t")
		for _, f := range freqs[:min(top, len(freqs))] {
			lastSeen := "never"
			if f.LastSeen < snap.Draws {
				lastSeen = fmt.Sprintf("%d draws ago", f.LastSeen)
			}
			fmt.Fprintf(w, "%s\t%d\t%.1f%%\t%s\t\n", temperature(f), f.Count, f.Percentage, lastSeen)
		}
		w.Flush()

		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("hot: "), balls(analysis.Hot(freqs), zone))
		fmt.Fprintf(out, "%s %s\n\n", labelStyle.Render("cold:"), balls(analysis.Cold(freqs), zone))
	}

	fmt.Fprintln(out, headerStyle.Render("Ratios"))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "front odd/even\t%s\t\n", ratio(snap.FrontOddEven))
	fmt.Fprintf(w, "back odd/even\t%s\t\n", ratio(snap.BackOddEven))
	fmt.Fprintf(w, "front big/small\t%s\t\n", ratio(snap.FrontBigSmall))
	fmt.Fprintf(w, "back big/small\t%s\t\n", ratio(snap.BackBigSmall))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, headerStyle.Render("Front zone distribution"))
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tAverage\tMin\tMax\tStdDev\t")
	fmt.Fprintf(w, "sum\t%.1f\t%d\t%d\t%.2f\t\n", snap.Sum.Average, snap.Sum.Min, snap.Sum.Max, snap.Sum.StdDev)
	fmt.Fprintf(w, "span\t%.1f\t%d\t%d\t%.2f\t\n", snap.Span.Average, snap.Span.Min, snap.Span.Max, snap.Span.StdDev)
	w.Flush()
}

func temperature(f analysis.NumberFrequency) string {
	n := fmt.Sprintf("%02d", f.Number)
	switch {
	case f.IsHot:
		return hotStyle.Render(n + " hot")
	case f.IsCold:
		return coldStyle.Render(n + " cold")
	default:
		return n
	}
}

func ratio(r analysis.Ratio) string {
	return fmt.Sprintf("%d:%d (%.1f%% / %.1f%%)", r.FirstCount, r.SecondCount, r.First, r.Second)
}

// parseNumbers reads a comma or space separated number list.
func parseNumbers(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	numbers := make([]int, 0, len(fields))
	for _, f := range fields {
		var n int
		if _, err := fmt.Sscanf(f, "%d", &n); err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
