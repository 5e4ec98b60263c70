// Package scheduler runs the periodic housekeeping jobs of the server.
package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// Sweeper drops sessions that have been idle for longer than idle and
// reports how many it dropped. *session.Registry satisfies it.
type Sweeper interface {
	SweepIdle(idle time.Duration) int
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	sweeper   Sweeper
	idle      time.Duration
	interval  time.Duration
	logger    *slog.Logger
}

func New(sweeper Sweeper, idle, interval time.Duration, logger *slog.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	// 前回の掃除が終わっていなければ次の実行はスキップ
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		sweeper:   sweeper,
		idle:      idle,
		interval:  interval,
		logger:    logger,
	}
}

// Start registers the jobs and runs them in the background.
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.interval).Do(s.sweepIdleSessions); err != nil {
		return fmt.Errorf("schedule session sweep: %w", err)
	}
	s.scheduler.StartAsync()
	s.logger.Info("Scheduler started",
		slog.Duration("sweep_interval", s.interval),
		slog.Duration("idle_timeout", s.idle),
	)
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) sweepIdleSessions() {
	if removed := s.sweeper.SweepIdle(s.idle); removed > 0 {
		s.logger.Info("Idle sessions evicted", slog.Int("count", removed))
	}
}
