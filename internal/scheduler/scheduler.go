package scheduler

import (
	"context"
	"time"

	"github.com/freddytc/checkout-agent/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sessionExpirer interface {
	ExpireDue(ctx context.Context) (*domain.CheckoutSession, error)
}

// Scheduler drives the hold-window countdown: a 1 Hz tick asks the checkout
// service whether the persisted deadline has passed.
type Scheduler struct {
	checkoutService sessionExpirer
	interval        time.Duration
	logger          logger.Logger
}

func New(
	checkoutService sessionExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		checkoutService: checkoutService,
		interval:        interval,
		logger:          logger,
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
	expired, err := s.checkoutService.ExpireDue(ctx)
	if err != nil {
		s.logger.Error("failed to expire checkout session",
			logger.String("error", err.Error()),
		)
		return
	}

	if expired != nil {
		s.logger.Info("checkout session expired",
			logger.String("batch_id", expired.BatchID()),
			logger.Int("reservations", len(expired.Reservations)),
		)
	}
}
