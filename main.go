package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"connectfour/config"
	"connectfour/engine"
	"connectfour/game"
	"connectfour/metrics"
	"connectfour/terminal"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "connectfour: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	_ = godotenv.Load()
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	logs, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer logs.Close()

	board, err := game.NewBoard(cfg.Rows, cfg.Columns)
	if err != nil {
		return err
	}
	state := game.NewGameState(board)

	screen, err := terminal.New()
	if err != nil {
		return err
	}
	// Deferred calls also run while a panic unwinds, so the terminal is
	// restored before the crash is printed.
	defer screen.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := engine.LocalEngine(state, screen,
		engine.WithTick(cfg.Tick),
		engine.WithMetrics(metrics.NewCollector()),
	)
	if err := e.Run(ctx); err != nil {
		log.Error().Err(err).Msg("game aborted")
		return err
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogger points the global logger at the configured file. Without one,
// logs are discarded: the terminal is busy drawing the board.
func setupLogger(cfg config.Config) (io.Closer, error) {
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.LogFile == "" {
		log.Logger = zerolog.New(io.Discard)
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
