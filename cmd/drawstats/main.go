package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/drawstats/internal/config"
	"github.com/lox/drawstats/internal/history"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"drawstats.hcl" help:"HCL config file (defaults are used when missing)"`
	Draws    string `short:"d" required:"" type:"existingfile" help:"JSON file of past draws, newest first"`
	Window   int    `short:"w" help:"Analyze only the newest N draws (overrides config)"`
	Seed     *int64 `help:"Random seed for reproducible results (overrides config)"`
	LogLevel string `help:"Log level (debug|info|warn|error)"`
	Verbose  bool   `help:"Enable debug logging"`
}

type CLI struct {
	Globals

	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Analyze   AnalyzeCmd       `cmd:"" help:"Print frequency, ratio and distribution statistics"`
	Recommend RecommendCmd     `cmd:"" help:"Recommend one combination per strategy"`
	Evaluate  EvaluateCmd      `cmd:"" help:"Score a combination against the history"`
	Learn     LearnCmd         `cmd:"" help:"Run the iterative learning loop"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("drawstats"),
		kong.Description("Draw history analysis and number recommendation engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// session is the loaded configuration, logger and history for one command.
type session struct {
	config  *config.Config
	logger  *log.Logger
	history *history.History
}

func (g *Globals) open() (*session, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.Window > 0 {
		cfg.Window = g.Window
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Verbose {
		cfg.LogLevel = "debug"
	}
	if g.Seed != nil {
		cfg.Seed = *g.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	h, err := history.Load(g.Draws, cfg.Window)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded draws", "file", g.Draws, "total", h.Total, "dropped", h.Dropped, "window", len(h.Draws), "seed", cfg.Seed)
	if h.Dropped > 0 {
		logger.Warn("skipped invalid draws", "count", h.Dropped)
	}

	return &session{config: cfg, logger: logger, history: h}, nil
}
