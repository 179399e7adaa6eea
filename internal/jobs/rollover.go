// Package jobs runs background maintenance procedures outside the request
// path.
package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"moneyman/internal/service"
)

// RolloverScheduler fires the month-end rollover once per month, at 23:59 on
// the true last calendar day. It arms a single timer for the next month-end
// instant instead of polling a day window, and re-arms after each firing.
type RolloverScheduler struct {
	svc    *service.RolloverService
	logger *zap.Logger
	now    func() time.Time
}

// NewRolloverScheduler creates a scheduler around the rollover service.
func NewRolloverScheduler(svc *service.RolloverService, logger *zap.Logger, now func() time.Time) *RolloverScheduler {
	return &RolloverScheduler{
		svc:    svc,
		logger: logger,
		now:    now,
	}
}

// Start runs the scheduling loop until ctx is cancelled. Call it in its own
// goroutine.
func (s *RolloverScheduler) Start(ctx context.Context) {
	for {
		now := s.now()
		next := NextRun(now)
		s.logger.Info("rollover scheduled", zap.Time("next_run", next))

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("rollover scheduler stopped")
			return
		case <-timer.C:
			if err := s.svc.RunAt(ctx, s.now()); err != nil {
				s.logger.Error("rollover run failed", zap.Error(err))
			}
		}
	}
}

// NextRun returns the next month-end firing instant strictly after the given
// time: 23:59 local on the last day of its month, or of the following month
// when that instant has already passed.
func NextRun(after time.Time) time.Time {
	// Day 0 of month m+1 is the last day of month m.
	next := time.Date(after.Year(), after.Month()+1, 0, 23, 59, 0, 0, after.Location())
	if !next.After(after) {
		next = time.Date(after.Year(), after.Month()+2, 0, 23, 59, 0, 0, after.Location())
	}
	return next
}
