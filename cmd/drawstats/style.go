package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/drawstats/internal/evaluator"
	"github.com/lox/drawstats/internal/lottery"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	frontBallStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	backBallStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	hotStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	coldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	ratingStyles = map[evaluator.Rating]lipgloss.Style{
		evaluator.Excellent: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		evaluator.Good:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		evaluator.Fair:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		evaluator.NeedsWork: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		evaluator.Invalid:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

func title(s string) string {
	return titleStyle.Render(s)
}

// balls renders numbers zero-padded in the zone's colour.
func balls(numbers []int, zone lottery.Zone) string {
	style := frontBallStyle
	if zone == lottery.Back {
		style = backBallStyle
	}
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = style.Render(fmt.Sprintf("%02d", n))
	}
	return strings.Join(parts, " ")
}

func combination(front, back []int) string {
	return balls(front, lottery.Front) + labelStyle.Render(" + ") + balls(back, lottery.Back)
}

func rating(e evaluator.Evaluation) string {
	return ratingStyles[e.Rating].Render(fmt.Sprintf("%.1f %s", e.Score, e.Rating))
}
