package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type reservationCompleter interface {
	CompleteElapsed(ctx context.Context) (int, error)
}

type coachBookingCompleter interface {
	CompleteElapsed(ctx context.Context) (int, error)
}

// Scheduler periodically moves confirmed bookings whose date has passed to
// the completed status, which makes their reservations reviewable.
type Scheduler struct {
	reservations  reservationCompleter
	coachBookings coachBookingCompleter
	interval      time.Duration
	logger        logger.Logger
}

func New(
	reservations reservationCompleter,
	coachBookings coachBookingCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservations:  reservations,
		coachBookings: coachBookings,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reservations, err := s.reservations.CompleteElapsed(ctx)
	if err != nil {
		s.logger.Error("failed to complete elapsed reservations",
			logger.String("error", err.Error()),
		)
	} else if reservations > 0 {
		s.logger.Info("elapsed reservations completed",
			logger.Int("count", reservations),
		)
	}

	bookings, err := s.coachBookings.CompleteElapsed(ctx)
	if err != nil {
		s.logger.Error("failed to complete elapsed coach bookings",
			logger.String("error", err.Error()),
		)
	} else if bookings > 0 {
		s.logger.Info("elapsed coach bookings completed",
			logger.Int("count", bookings),
		)
	}
}
