package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"connectfour/game"
	"connectfour/metrics"
	"connectfour/ui"

	"github.com/stretchr/testify/require"
)

// scriptedScreen replays keys and records every drawn frame.
type scriptedScreen struct {
	keys     []Key
	frames   []ui.Frame
	timeouts []time.Duration
	drawErr  error
	pollErr  error
}

func (s *scriptedScreen) Draw(frame ui.Frame) error {
	if s.drawErr != nil {
		return s.drawErr
	}
	s.frames = append(s.frames, frame)
	return nil
}

func (s *scriptedScreen) Poll(timeout time.Duration) (Key, error) {
	s.timeouts = append(s.timeouts, timeout)
	if s.pollErr != nil {
		return Key{}, s.pollErr
	}
	if len(s.keys) == 0 {
		return Key{Kind: KeyQuit}, nil
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, nil
}

func digit(r rune) Key {
	return Key{Kind: KeyDigit, Rune: r}
}

func newState(t *testing.T) *game.GameState {
	t.Helper()
	b, err := game.NewBoard(6, 7)
	require.NoError(t, err)
	return game.NewGameState(b)
}

func TestLocalEngine(t *testing.T) {
	t.Run("panics without a state", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(nil, &scriptedScreen{})
		})
	})

	t.Run("ignores non-positive tick", func(t *testing.T) {
		e := LocalEngine(newState(t), &scriptedScreen{}, WithTick(0), WithTick(-time.Second))
		require.Positive(t, e.tick)
	})
}

func TestEngineHandle(t *testing.T) {
	t.Run("digits, backspace and commit", func(t *testing.T) {
		state := newState(t)
		e := LocalEngine(state, &scriptedScreen{})

		require.False(t, e.Handle(digit('9')))
		require.False(t, e.Handle(Key{Kind: KeyBackspace}))
		require.False(t, e.Handle(digit('4')))
		require.Equal(t, "4", state.Input())
		require.False(t, e.Handle(Key{Kind: KeyCommit}))

		require.Equal(t, game.Red, state.Board.At(0, 3))
		require.Equal(t, game.Second, state.Turn())
		require.Empty(t, state.Input())
	})

	t.Run("ignored keys do nothing", func(t *testing.T) {
		state := newState(t)
		e := LocalEngine(state, &scriptedScreen{})
		hash := state.Hash()

		require.False(t, e.Handle(Key{}))
		require.False(t, e.Handle(Key{Kind: KeyDigit, Rune: 'x'}))

		require.Equal(t, hash, state.Hash())
	})

	t.Run("quit", func(t *testing.T) {
		e := LocalEngine(newState(t), &scriptedScreen{})
		require.True(t, e.Handle(Key{Kind: KeyQuit}))
	})
}

func TestEngineRun(t *testing.T) {
	t.Run("redraws after every key until quit", func(t *testing.T) {
		state := newState(t)
		screen := &scriptedScreen{keys: []Key{digit('4'), {Kind: KeyCommit}, digit('1')}}
		collector := metrics.NewCollector()
		e := LocalEngine(state, screen, WithTick(time.Millisecond), WithMetrics(collector))

		require.NoError(t, e.Run(context.Background()))

		require.Len(t, screen.frames, 4)
		require.Empty(t, screen.frames[0].Rects)
		require.Equal(t, "4", screen.frames[1].Panels[0].Text)
		require.Len(t, screen.frames[2].Rects, 1)
		require.True(t, screen.frames[2].Panels[1].Active)
		require.Equal(t, "1", screen.frames[3].Panels[1].Text)

		session := collector.Complete()
		require.Equal(t, 4, session.Frames)
		require.Equal(t, 1, session.Placements)
		require.Equal(t, 1, session.Commits)
	})

	t.Run("waits no longer than one tick", func(t *testing.T) {
		screen := &scriptedScreen{keys: []Key{{}, {}, {}}}
		e := LocalEngine(newState(t), screen, WithTick(20*time.Millisecond))

		require.NoError(t, e.Run(context.Background()))

		require.NotEmpty(t, screen.timeouts)
		for _, timeout := range screen.timeouts {
			require.GreaterOrEqual(t, timeout, time.Duration(0))
			require.LessOrEqual(t, timeout, 20*time.Millisecond)
		}
	})

	t.Run("fills a column then ignores further drops", func(t *testing.T) {
		keys := []Key{}
		for i := 0; i < 7; i++ {
			keys = append(keys, digit('4'), Key{Kind: KeyCommit})
		}
		state := newState(t)
		collector := metrics.NewCollector()
		e := LocalEngine(state, &scriptedScreen{keys: keys}, WithMetrics(collector))

		require.NoError(t, e.Run(context.Background()))

		require.True(t, state.Board.ColumnFull(3))
		require.Equal(t, game.First, state.Turn(), "Six placements should leave First to move")
		require.Equal(t, "4", state.Input(), "Rejected drop should keep the input")
		session := collector.Complete()
		require.Equal(t, 6, session.Placements)
		require.Equal(t, 1, session.RejectedFull)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		screen := &scriptedScreen{}

		require.NoError(t, LocalEngine(newState(t), screen).Run(ctx))
		require.Empty(t, screen.frames)
	})

	t.Run("draw errors are fatal", func(t *testing.T) {
		boom := errors.New("broken pipe")
		err := LocalEngine(newState(t), &scriptedScreen{drawErr: boom}).Run(context.Background())
		require.ErrorIs(t, err, boom)
	})

	t.Run("input errors are fatal", func(t *testing.T) {
		boom := errors.New("tty gone")
		err := LocalEngine(newState(t), &scriptedScreen{pollErr: boom}).Run(context.Background())
		require.ErrorIs(t, err, boom)
	})
}
