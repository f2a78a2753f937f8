package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/freddytc/checkout-agent/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// armWindow persists the hold deadline for a reservation batch. The deadline
// is computed once per distinct batch: a reload of the same batch reuses the
// stored value unchanged, so reloading can never extend the hold.
func (s *Service) armWindow(ctx context.Context, batchID string) error {
	existing, err := s.store.LoadWindow(ctx)
	if err == nil && existing.BatchID == batchID {
		s.logger.Info("hold window resumed",
			logger.String("batch_id", batchID),
			logger.Int64("time_left", existing.TimeLeft(s.now())),
		)
		return nil
	}
	if err != nil && !errors.Is(err, domain.ErrWindowNotFound) {
		return fmt.Errorf("load expiration window: %w", err)
	}

	window := domain.ExpirationWindow{
		ExpiresAt: s.now().Add(s.holdWindow),
		BatchID:   batchID,
	}
	if err := s.store.SaveWindow(ctx, window); err != nil {
		return fmt.Errorf("persist expiration window: %w", err)
	}

	s.logger.Info("hold window armed",
		logger.String("batch_id", batchID),
		logger.Duration("hold_window", s.holdWindow),
	)
	return nil
}

// timeLeft derives the remaining seconds from the persisted deadline, never
// from an in-memory counter, which keeps the countdown correct across
// restarts and slow ticks.
func (s *Service) timeLeft(ctx context.Context) (int64, error) {
	window, err := s.store.LoadWindow(ctx)
	if errors.Is(err, domain.ErrWindowNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load expiration window: %w", err)
	}
	return window.TimeLeft(s.now()), nil
}

// ExpireDue is invoked by the scheduler tick. When the deadline has passed
// (or is missing while a session is active) the session is finalized through
// the same single-use path as every other trigger, so expiry fires exactly
// once. Ticks are skipped while a purchase is in flight.
func (s *Service) ExpireDue(ctx context.Context) (*domain.CheckoutSession, error) {
	s.mu.Lock()
	active := s.session != nil && !s.finalized
	inFlight := s.inFlight
	s.mu.Unlock()

	if !active || inFlight {
		return nil, nil
	}

	left, err := s.timeLeft(ctx)
	if err != nil {
		return nil, err
	}
	if left > 0 {
		return nil, nil
	}

	session, err := s.finalize(ctx, domain.ReasonExpired)
	if errors.Is(err, domain.ErrNoActiveSession) {
		// Another trigger won the race; nothing left to do.
		return nil, nil
	}
	if err != nil {
		return session, err
	}

	go s.notifier.NotifyHoldExpired(context.WithoutCancel(ctx), session)
	return session, nil
}
