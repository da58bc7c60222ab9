package metrics

import (
	"bytes"
	"encoding/json"
	"testing"

	"connectfour/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts frames and commit results", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		for i := 0; i < 3; i++ {
			c.AddFrame()
		}
		c.AddResult(game.Placed)
		c.AddResult(game.Placed)
		c.AddResult(game.RejectedParse)
		c.AddResult(game.RejectedRange)
		c.AddResult(game.RejectedFull)
		c.AddResult(game.RejectedFull)

		s := c.Complete()

		require.Equal(t, 3, s.Frames)
		require.Equal(t, 6, s.Commits)
		require.Equal(t, 2, s.Placements)
		require.Equal(t, 1, s.RejectedParse)
		require.Equal(t, 1, s.RejectedRange)
		require.Equal(t, 2, s.RejectedFull)
		require.False(t, s.StartTime.IsZero())
		require.GreaterOrEqual(t, s.Duration.Nanoseconds(), int64(0))
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddFrame()
		c.AddResult(game.Placed)

		require.Equal(t, Session{}, c.Complete())
	})
}

func TestSessionLogObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Info().Object("session", Session{Frames: 10, Commits: 2, Placements: 1, RejectedFull: 1}).Msg("done")

	var entry struct {
		Session map[string]any `json:"session"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	session := entry.Session
	require.EqualValues(t, 10, session["frames"])
	require.EqualValues(t, 2, session["commits"])
	require.EqualValues(t, 1, session["placements"])
	require.EqualValues(t, 1, session["rejected_full"])
}
