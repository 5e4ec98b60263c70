package scheduler

import (
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"studystack/internal/model"
	"studystack/internal/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls atomic.Int32
	idle  atomic.Int64
}

func (c *countingSweeper) SweepIdle(idle time.Duration) int {
	c.calls.Add(1)
	c.idle.Store(int64(idle))
	return 1
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunsSweepPeriodically(t *testing.T) {
	sweeper := &countingSweeper{}
	s := New(sweeper, 5*time.Minute, 50*time.Millisecond, discardLogger())

	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(5*time.Minute), sweeper.idle.Load())
}

func TestScheduler_SweepsRegistry(t *testing.T) {
	registry := session.NewRegistry()
	deck := &model.Deck{DeckID: uuid.New(), Title: "t", Cards: []model.Flashcard{{ID: "1", Question: "q", Answer: "a"}}}
	registry.Add(session.NewStudyEntry(uuid.New(), deck))

	// idle 0 なので次の掃除で必ず消える
	s := New(registry, 0, 20*time.Millisecond, discardLogger())
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool { return registry.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}
