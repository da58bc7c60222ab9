package metrics

import (
	"sync/atomic"
	"time"

	"connectfour/game"

	"github.com/rs/zerolog"
)

// Session summarizes one run of the game. Nothing is persisted; the summary
// is only logged.
type Session struct {
	StartTime     time.Time
	Duration      time.Duration
	Frames        int
	Commits       int
	Placements    int
	RejectedParse int
	RejectedRange int
	RejectedFull  int
}

func (s Session) MarshalZerologObject(e *zerolog.Event) {
	e.Time("start", s.StartTime).
		Dur("duration", s.Duration).
		Int("frames", s.Frames).
		Int("commits", s.Commits).
		Int("placements", s.Placements).
		Int("rejected_parse", s.RejectedParse).
		Int("rejected_range", s.RejectedRange).
		Int("rejected_full", s.RejectedFull)
}

type Collector interface {
	Start()
	AddFrame()
	AddResult(result game.Result)
	Complete() Session
}

type collector struct {
	startTime     time.Time
	frames        atomic.Int32
	placements    atomic.Int32
	rejectedParse atomic.Int32
	rejectedRange atomic.Int32
	rejectedFull  atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddFrame() {
	m.frames.Add(1)
}

func (m *collector) AddResult(result game.Result) {
	switch result {
	case game.Placed:
		m.placements.Add(1)
	case game.RejectedParse:
		m.rejectedParse.Add(1)
	case game.RejectedRange:
		m.rejectedRange.Add(1)
	case game.RejectedFull:
		m.rejectedFull.Add(1)
	}
}

func (m *collector) Complete() Session {
	s := Session{
		StartTime:     m.startTime,
		Duration:      time.Since(m.startTime),
		Frames:        int(m.frames.Load()),
		Placements:    int(m.placements.Load()),
		RejectedParse: int(m.rejectedParse.Load()),
		RejectedRange: int(m.rejectedRange.Load()),
		RejectedFull:  int(m.rejectedFull.Load()),
	}
	s.Commits = s.Placements + s.RejectedParse + s.RejectedRange + s.RejectedFull
	return s
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                       {}
func (m *dummyCollector) AddFrame()                    {}
func (m *dummyCollector) AddResult(result game.Result) {}
func (m *dummyCollector) Complete() Session            { return Session{} }
