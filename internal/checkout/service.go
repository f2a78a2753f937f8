package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/freddytc/checkout-agent/internal/checkout/ports"
	"github.com/freddytc/checkout-agent/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// Service owns the client side of the reservation lifecycle: it acquires
// reservations, tracks the hold window against the persisted deadline, and
// guarantees exactly one terminal outcome (release or consumption) per
// reservation of the active session.
type Service struct {
	backend    ports.BackendClient
	store      ports.SessionStore
	notifier   ports.CheckoutNotifier
	logger     logger.Logger
	holdWindow time.Duration
	now        func() time.Time

	mu        sync.Mutex
	session   *domain.CheckoutSession
	finalized bool
	inFlight  bool
}

func NewService(
	backend ports.BackendClient,
	store ports.SessionStore,
	notifier ports.CheckoutNotifier,
	holdWindow time.Duration,
	logger logger.Logger,
) *Service {
	return &Service{
		backend:    backend,
		store:      store,
		notifier:   notifier,
		logger:     logger,
		holdWindow: holdWindow,
		now:        time.Now,
	}
}

// Begin acquires one reservation per line item and opens a new checkout
// session. An active session is finalized first: navigating into a new
// checkout abandons the previous one.
func (s *Service) Begin(ctx context.Context, input domain.BeginCheckoutInput) (*domain.CheckoutSession, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptySelection
	}

	items := make([]domain.LineItem, 0, len(input.Items))
	total := 0.0
	for _, it := range input.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidQuantity, it.Name)
		}
		subtotal := it.UnitPrice * float64(it.Quantity)
		items = append(items, domain.LineItem{
			TicketTypeID: it.TicketTypeID,
			Name:         it.Name,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Subtotal:     subtotal,
		})
		total += subtotal
	}

	if _, err := s.finalize(ctx, domain.ReasonSuperseded); err == nil {
		s.logger.Info("previous checkout session superseded")
	} else if errors.Is(err, domain.ErrPaymentInFlight) {
		return nil, err
	}

	reservations, err := s.acquire(ctx, input.UserID, items)
	if err != nil {
		return nil, err
	}

	session := &domain.CheckoutSession{
		Event:        input.Event,
		Items:        items,
		Reservations: reservations,
		Total:        total,
	}

	if err := s.store.SaveSession(ctx, session); err != nil {
		s.abandon(ctx, reservations)
		return nil, fmt.Errorf("persist session: %w", err)
	}
	if err := s.armWindow(ctx, session.BatchID()); err != nil {
		s.abandon(ctx, reservations)
		return nil, err
	}

	s.mu.Lock()
	s.session = session
	s.finalized = false
	s.inFlight = false
	s.mu.Unlock()

	s.logger.Info("checkout session started",
		logger.String("batch_id", session.BatchID()),
		logger.Int("lines", len(items)),
		logger.Any("total", total),
	)

	return session, nil
}

// Resume reloads a persisted session after a restart. The hold window is
// re-armed under the same-batch rule, so a restart never extends the hold.
func (s *Service) Resume(ctx context.Context) (*domain.CheckoutSession, error) {
	session, err := s.store.LoadSession(ctx)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load persisted session: %w", err)
	}

	if err := s.armWindow(ctx, session.BatchID()); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.session = session
	s.finalized = false
	s.inFlight = false
	s.mu.Unlock()

	s.logger.Info("checkout session resumed",
		logger.String("batch_id", session.BatchID()),
		logger.Int("reservations", len(session.Reservations)),
	)

	return session, nil
}

// Current returns the active session and its remaining seconds, derived from
// the persisted deadline.
func (s *Service) Current(ctx context.Context) (*domain.CheckoutSession, int64, error) {
	s.mu.Lock()
	session := s.session
	finalized := s.finalized
	s.mu.Unlock()

	if session == nil || finalized {
		return nil, 0, domain.ErrNoActiveSession
	}

	left, err := s.timeLeft(ctx)
	if err != nil {
		return nil, 0, err
	}
	return session, left, nil
}

// Pay runs one purchase call per line item, each with a freshly generated
// idempotency key. A failed line leaves the session active and its remaining
// reservations held, so payment can be retried until the hold expires.
func (s *Service) Pay(ctx context.Context, input domain.PaymentInput) (*domain.CheckoutSession, error) {
	method := input.Method
	if input.SimulateDecline {
		method = domain.PaymentMethod{
			CardNumber: domain.DeclinedTestCard,
			CardHolder: "TEST DECLINE",
			ExpiryDate: "12/26",
			CVV:        "123",
		}
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.session == nil || s.finalized {
		s.mu.Unlock()
		return nil, domain.ErrNoActiveSession
	}
	if s.inFlight {
		s.mu.Unlock()
		return nil, domain.ErrPaymentInFlight
	}
	s.inFlight = true
	session := s.session
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	left, err := s.timeLeft(ctx)
	if err != nil {
		return nil, err
	}
	if left <= 0 {
		return nil, domain.ErrSessionExpired
	}

	method = method.Normalized()
	for i, item := range session.Items {
		s.mu.Lock()
		aborted := s.finalized
		s.mu.Unlock()
		if aborted {
			return nil, domain.ErrNoActiveSession
		}

		reservation := session.Reservations[i]

		err := s.backend.PurchaseTicket(ctx, domain.PurchaseInput{
			UserID:         input.UserID,
			TicketTypeID:   item.TicketTypeID,
			Quantity:       item.Quantity,
			ReservationID:  reservation.ID,
			IdempotencyKey: uuid.New().String(),
			PaymentMethod:  method,
		})
		if err != nil {
			s.logger.Error("purchase failed",
				logger.String("ticket_type", item.TicketTypeID),
				logger.String("reservation_id", reservation.ID.String()),
				logger.String("error", err.Error()),
			)
			return nil, fmt.Errorf("%w: %s", domain.ErrPurchase, err.Error())
		}

		s.logger.Info("line item purchased",
			logger.String("ticket_type", item.TicketTypeID),
			logger.String("reservation_id", reservation.ID.String()),
			logger.String("card_brand", method.CardBrand()),
		)
	}

	s.mu.Lock()
	if s.finalized {
		s.mu.Unlock()
		return nil, domain.ErrNoActiveSession
	}
	s.finalized = true
	s.session = nil
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error("failed to clear persisted state after purchase",
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("checkout completed",
		logger.String("batch_id", session.BatchID()),
		logger.String("reason", string(domain.ReasonConsumed)),
		logger.Any("total", session.Total),
	)

	go s.notifier.NotifyPurchaseCompleted(context.WithoutCancel(ctx), session)

	return session, nil
}

// Cancel is the user-initiated trigger; the handler requires an explicit
// confirmation before calling it.
func (s *Service) Cancel(ctx context.Context) error {
	session, err := s.finalize(ctx, domain.ReasonCancelled)
	if err != nil {
		return err
	}

	go s.notifier.NotifyCheckoutCancelled(context.WithoutCancel(ctx), session)
	return nil
}

// Shutdown is the process-exit trigger: best-effort release of whatever is
// still held. Nothing is surfaced; the caller is already terminating.
func (s *Service) Shutdown(ctx context.Context) {
	if _, err := s.finalize(ctx, domain.ReasonShutdown); err != nil && !errors.Is(err, domain.ErrNoActiveSession) {
		s.logger.Error("shutdown finalize failed",
			logger.String("error", err.Error()),
		)
	}
}
