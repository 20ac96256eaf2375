// Package scheduler drives the periodic feed polling cycle.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/coldstore"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/common"
)

// cycleTimeout bounds a single polling cycle. A feed outage must never hold
// the cycle lock past the next few ticks.
const cycleTimeout = 30 * time.Second

// Scheduler periodically runs the ingestion cycle against the telemetry feed.
type Scheduler struct {
	scheduler *gocron.Scheduler
	cold      *coldstore.ColdStore
	interval  time.Duration
}

// New creates a new Scheduler.
func New(interval time.Duration, cold *coldstore.ColdStore) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		cold:      cold,
		interval:  interval,
	}
}

// Start schedules the periodic polling job and starts the underlying
// scheduler. Ticks fire whether or not the previous cycle finished; the
// cycle's own guard turns overlapping ticks into skips.
func (s *Scheduler) Start() error {
	logger := common.GetLoggerWith(common.LoggerNameScheduler)

	seconds := int(s.interval.Seconds())
	if seconds <= 0 {
		seconds = 60
	}

	_, err := s.scheduler.Every(seconds).Seconds().Do(func() {
		logger.Info("Running polling cycle")

		ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
		defer cancel()

		stored, err := s.cold.Ingest.RunCycle(ctx)
		switch {
		case errors.Is(err, coldstore.ErrCycleInFlight):
			logger.Info("Previous polling cycle still running, skipped this tick")
		case err != nil:
			logger.Error("Polling cycle failed", zap.Error(err))
		default:
			logger.Info("Polling cycle completed", zap.Int("stored", stored))
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future ticks. In-flight cycles
// run to completion.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
