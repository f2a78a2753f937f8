package checkout

import (
	"context"
	"fmt"

	"github.com/freddytc/checkout-agent/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// finalize is the single terminal entry point every trigger path converges
// on: explicit cancel, hold expiry, a superseding checkout, and process
// shutdown. The finalized flag is flipped under the lock before any release
// is dispatched, so racing triggers release each reservation at most once.
// While a payment is in flight no trigger may release: the purchase loop
// would consume reservations the trigger just freed.
func (s *Service) finalize(ctx context.Context, reason domain.FinalizeReason) (*domain.CheckoutSession, error) {
	s.mu.Lock()
	if s.session == nil || s.finalized {
		s.mu.Unlock()
		return nil, domain.ErrNoActiveSession
	}
	if s.inFlight {
		s.mu.Unlock()
		return nil, domain.ErrPaymentInFlight
	}
	s.finalized = true
	session := s.session
	s.session = nil
	s.mu.Unlock()

	s.logger.Info("finalizing checkout session",
		logger.String("batch_id", session.BatchID()),
		logger.String("reason", string(reason)),
		logger.Int("reservations", len(session.Reservations)),
	)

	s.releaseAll(ctx, session)

	if err := s.store.Clear(ctx); err != nil {
		return session, fmt.Errorf("clear persisted state: %w", err)
	}
	return session, nil
}

// releaseAll frees every reservation of the session. Order is not
// significant; a failure on one does not block the others, and errors are
// logged only since the caller has no remedy at this point. All attempts are
// awaited before the session is treated as closed.
func (s *Service) releaseAll(ctx context.Context, session *domain.CheckoutSession) {
	for _, r := range session.Reservations {
		if err := s.backend.ReleaseReservation(ctx, r.ID); err != nil {
			s.logger.Error("release failed",
				logger.String("reservation_id", r.ID.String()),
				logger.String("error", err.Error()),
			)
			continue
		}
		s.logger.Info("reservation released",
			logger.String("reservation_id", r.ID.String()),
		)
	}
}
