package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-tui/internal/assets"
	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/games/flappy"
	"github.com/vovakirdan/flappy-tui/internal/platform/tui"
	"github.com/vovakirdan/flappy-tui/internal/storage"
)

func runPlay(cmd *cobra.Command, args []string) error {
	stderr := cmd.ErrOrStderr()
	logger, gameOut, closeLog, err := newLogger(stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, art, err := loadResources(logger)
	if err != nil {
		logStartupFailure(logger, err)
		closeLog()
		os.Exit(1)
	}

	if flagJournal != storage.MemoryDSN {
		logger.Warn("journal on disk is meant for debugging", "journal", flagJournal)
	}
	store, err := storage.Open(flagJournal)
	if err != nil {
		logger.Warn("could not open round journal", "error", err)
		// Continue without the journal
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	rc.Plain = plainOutput()

	// Log lines on stderr would tear the alternate screen.
	logger.SetOutput(gameOut)
	game := flappy.New(cfg)
	runErr := tui.Run(game, art, store, logger, rc)
	logger.SetOutput(stderr)
	if runErr != nil {
		logger.Error("game exited with error", "error", runErr)
		return runErr
	}

	printSummary(cmd.OutOrStdout(), store, logger)
	return nil
}

// loadResources reads and validates the game config and the asset pack.
func loadResources(logger *log.Logger) (config.FlappyConfig, *assets.Pack, error) {
	cfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return config.FlappyConfig{}, nil, fmt.Errorf("invalid config %s: %w", source, err)
	}
	logger.Debug("config loaded", "source", source)

	art, err := assets.Load(flagAssets)
	if err != nil {
		return config.FlappyConfig{}, nil, err
	}
	logger.Debug("assets loaded", "source", art.Source)
	return cfg, art, nil
}

// logStartupFailure reports a fatal startup error, naming the missing
// resource when there is one. The caller exits.
func logStartupFailure(logger *log.Logger, err error) {
	var missing *assets.MissingError
	if errors.As(err, &missing) {
		logger.Log(log.FatalLevel, "missing asset", "resource", missing.Resource, "path", missing.Path, "error", missing.Err)
		return
	}
	logger.Log(log.FatalLevel, "could not start", "error", err)
}

// plainOutput reports whether to draw without colors.
func plainOutput() bool {
	if flagNoColor {
		return true
	}
	_, set := os.LookupEnv("NO_COLOR")
	return set
}

// printSummary writes the session totals from the journal.
func printSummary(w io.Writer, store *storage.Store, logger *log.Logger) {
	if store == nil {
		return
	}
	last, err := store.LastRound()
	if storage.IsEmpty(err) {
		fmt.Fprintln(w, "No rounds played.")
		return
	}
	if err != nil {
		logger.Warn("could not read round journal", "error", err)
		return
	}
	sum, err := store.Summary()
	if err != nil {
		logger.Warn("could not read round journal", "error", err)
		return
	}

	fmt.Fprintf(w, "Rounds played: %d\n", sum.Rounds)
	fmt.Fprintf(w, "Best score:    %d\n", sum.Best)
	fmt.Fprintf(w, "Average score: %.1f\n", sum.AvgScore)
	fmt.Fprintf(w, "Last round:    %d (%s)\n", last.Score, last.Cause)
}
