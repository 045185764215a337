package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lox/drawstats/internal/recommend"
)

type RecommendCmd struct {
	Insights bool `help:"Show strategy insights"`
}

func (c *RecommendCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	cfg, err := s.config.RecommendConfig()
	if err != nil {
		return err
	}
	cfg.Logger = s.logger

	recs, err := recommend.Generate(context.Background(), s.history.Draws, cfg)
	if err != nil {
		return err
	}

	printRecommendations(os.Stdout, recs, c.Insights)
	return nil
}

func printRecommendations(out io.Writer, recs []recommend.Recommendation, insights bool) {
	fmt.Fprintln(out, title(" Recommendations "))
	fmt.Fprintln(out)
	for i, r := range recs {
		fmt.Fprintf(out, "%d. %s\n", i+1, headerStyle.Render(r.Strategy.Title()))
		fmt.Fprintf(out, "   %s\n", combination(r.Front, r.Back))
		fmt.Fprintf(out, "   %s %.1f  %s %s\n",
			labelStyle.Render("confidence"), r.Confidence,
			labelStyle.Render("front"), rating(r.FrontEval))
		if insights {
			for _, line := range r.Insights {
				fmt.Fprintf(out, "   %s %s\n", labelStyle.Render("-"), line)
			}
		}
		fmt.Fprintln(out)
	}
}
