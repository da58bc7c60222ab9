package engine

import (
	"context"
	"fmt"
	"time"

	"connectfour/game"
	"connectfour/meta"
	"connectfour/metrics"
	"connectfour/ui"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

type Engine struct {
	State   *game.GameState
	Screen  Screen
	tick    time.Duration
	metrics metrics.Collector
}

func WithTick(tick time.Duration) Option {
	return func(e *Engine) {
		if tick > 0 {
			e.tick = tick
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

// LocalEngine runs a hot-seat game: both players share one keyboard.
func LocalEngine(state *game.GameState, screen Screen, options ...Option) *Engine {
	if state == nil || screen == nil {
		panic("engine needs a game state and a screen")
	}
	e := &Engine{
		State:   state,
		Screen:  screen,
		tick:    meta.TICK_RATE,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run alternates between drawing the state and waiting up to one tick for a
// key, until the quit key is pressed or ctx is done. Draw and input errors
// end the loop and are returned.
func (e *Engine) Run(ctx context.Context) error {
	e.metrics.Start()
	defer func() {
		log.Info().Object("session", e.metrics.Complete()).Msg("game closed")
	}()

	log.Info().
		Int("rows", e.State.Board.Rows()).
		Int("columns", e.State.Board.Columns()).
		Msgf("player %s is starting", e.State.Turn())

	lastTick := time.Now()
	for {
		if ctx.Err() != nil {
			return nil
		}

		if err := e.Screen.Draw(ui.Present(e.State)); err != nil {
			return fmt.Errorf("failed to draw frame: %w", err)
		}
		e.metrics.AddFrame()

		timeout := e.tick - time.Since(lastTick)
		if timeout < 0 {
			timeout = 0
		}
		key, err := e.Screen.Poll(timeout)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if e.Handle(key) {
			return nil
		}

		if time.Since(lastTick) >= e.tick {
			lastTick = time.Now()
		}
	}
}

// Handle applies a single key to the state and reports whether the game
// should quit.
func (e *Engine) Handle(key Key) (quit bool) {
	switch key.Kind {
	case KeyDigit:
		e.State.PushDigit(key.Rune)
	case KeyBackspace:
		e.State.PopDigit()
	case KeyCommit:
		player, input := e.State.Turn(), e.State.Input()
		result := e.State.CommitTurn()
		e.metrics.AddResult(result)
		log.Debug().
			Stringer("player", player).
			Str("input", input).
			Stringer("result", result).
			Int("placements", e.State.Placements()).
			Msg("commit")
	case KeyQuit:
		return true
	}
	return false
}
