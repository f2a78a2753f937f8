package checkout

import (
	"context"
	"fmt"

	"github.com/freddytc/checkout-agent/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// acquire creates one reservation per line item, sequentially and in list
// order, so a failure can be compensated at a precise index. Individual
// creations are never retried: a rejection is terminal for the whole attempt.
func (s *Service) acquire(ctx context.Context, userID string, items []domain.LineItem) ([]domain.Reservation, error) {
	reservations := make([]domain.Reservation, 0, len(items))

	for _, item := range items {
		reservation, err := s.backend.CreateReservation(ctx, domain.CreateReservationInput{
			TicketTypeID: item.TicketTypeID,
			UserID:       userID,
			Quantity:     item.Quantity,
		})
		if err != nil {
			s.logger.Error("reservation failed, rolling back batch",
				logger.String("ticket_type", item.TicketTypeID),
				logger.Int("acquired", len(reservations)),
				logger.String("error", err.Error()),
			)
			s.rollback(ctx, reservations)
			return nil, fmt.Errorf("%w: %s", domain.ErrAcquisition, err.Error())
		}

		reservations = append(reservations, *reservation)
		s.logger.Info("reservation created",
			logger.String("reservation_id", reservation.ID.String()),
			logger.String("ticket_type", item.TicketTypeID),
			logger.Int("quantity", item.Quantity),
		)
	}

	return reservations, nil
}

// abandon frees reservations from an attempt that could not be installed as
// the active session. Without this, no trigger path would ever release them.
func (s *Service) abandon(ctx context.Context, reservations []domain.Reservation) {
	s.rollback(ctx, reservations)
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error("failed to clear persisted state",
			logger.String("error", err.Error()),
		)
	}
}

// rollback releases the reservations created earlier in the same attempt.
// Only this attempt's handles are touched, never a previous session's. Each
// release is awaited; failures are logged and the rest are still attempted.
func (s *Service) rollback(ctx context.Context, reservations []domain.Reservation) {
	for _, r := range reservations {
		if err := s.backend.ReleaseReservation(ctx, r.ID); err != nil {
			s.logger.Error("rollback release failed",
				logger.String("reservation_id", r.ID.String()),
				logger.String("error", err.Error()),
			)
			continue
		}
		s.logger.Info("reservation rolled back",
			logger.String("reservation_id", r.ID.String()),
		)
	}
}
