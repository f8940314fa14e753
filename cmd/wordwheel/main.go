// Package main is the entry point for Wordwheel.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/wordwheel/internal/config"
	"github.com/samdwyer/wordwheel/internal/engine"
	"github.com/samdwyer/wordwheel/internal/feedback"
	"github.com/samdwyer/wordwheel/internal/game"
	"github.com/samdwyer/wordwheel/internal/logger"
	"github.com/samdwyer/wordwheel/internal/metrics"
	"github.com/samdwyer/wordwheel/internal/puzzle"
	"github.com/samdwyer/wordwheel/internal/telemetry"
	"github.com/samdwyer/wordwheel/internal/ui"
)

const bellGap = 150 * time.Millisecond

func main() {
	os.Exit(run())
}

// run wires the game together and returns the process exit code.
// Every failure after the logger opens returns so deferred cleanup runs.
func run() int {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	// The terminal belongs to tcell, so logs go to a file
	if err := logger.Init(cfg.LogFile, cfg.LogLevel); err != nil {
		log.Printf("Failed to open log: %v", err)
		return 1
	}
	defer logger.Sync()

	setupOTelEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Log.Warnw("telemetry setup failed, running without traces", "error", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Log.Warnw("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	puzzles, err := puzzle.LoadFile(cfg.PuzzlesFile)
	if err != nil {
		logger.Log.Errorw("failed to load puzzles", "path", cfg.PuzzlesFile, "error", err)
		log.Printf("Failed to load puzzles: %v", err)
		return 1
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Log.Infow("starting", "puzzles", puzzles.Len(), "seed", seed)

	eng := engine.New(puzzles, rng.Intn, engine.Config{
		DefaultSpin:    cfg.DefaultSpin,
		HostSolveToken: cfg.HostSolveToken,
	})

	m := metrics.New("wordwheel")
	eng.AddListener(m)
	if cfg.MetricsAddr != "" {
		m.Serve(ctx, cfg.MetricsAddr)
	}

	theme, err := ui.ParseTheme(cfg.Theme)
	if err != nil {
		logger.Log.Warnw("invalid theme, using defaults", "error", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		logger.Log.Errorw("failed to initialize screen", "error", err)
		log.Printf("Failed to initialize screen: %v", err)
		return 1
	}
	eng.AddListener(feedback.NewDispatcher(feedback.NewBell(screen, bellGap)))

	g := game.New(screen, eng, game.Config{
		MaxPlayers:  cfg.MaxPlayers,
		DefaultSpin: cfg.DefaultSpin,
		Theme:       theme,
	})
	if err := g.Run(ctx); err != nil {
		logger.Log.Errorw("game error", "error", err)
		return 1
	}
	return 0
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_WORDWHEEL_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_WORDWHEEL_DATASET")
	if dataset == "" {
		dataset = "wordwheel"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
