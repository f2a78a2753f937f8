package domain

import "time"

// FinalizeReason identifies which trigger path closed a checkout session.
type FinalizeReason string

const (
	ReasonCancelled  FinalizeReason = "cancelled"
	ReasonExpired    FinalizeReason = "expired"
	ReasonSuperseded FinalizeReason = "superseded"
	ReasonShutdown   FinalizeReason = "shutdown"
	ReasonConsumed   FinalizeReason = "consumed"
)

// EventSnapshot is the event data carried into checkout for display and
// receipts. The wire names follow the ticketing backend's contract.
type EventSnapshot struct {
	ID       string    `json:"id"`
	Name     string    `json:"nombre"`
	Date     time.Time `json:"fechaEvento"`
	Location string    `json:"ubicacion"`
}

// CheckoutSession is the client-held aggregate for one checkout attempt.
// Reservations is index-aligned with Items: Reservations[i] holds the stock
// for Items[i].
type CheckoutSession struct {
	Event        EventSnapshot `json:"evento"`
	Items        []LineItem    `json:"seleccion"`
	Reservations []Reservation `json:"reservas"`
	Total        float64       `json:"total"`
}

// BatchID distinguishes a resumed session from a brand-new one across
// restarts: the first reservation's id is stable for the whole batch.
func (s *CheckoutSession) BatchID() string {
	if len(s.Reservations) == 0 {
		return ""
	}
	return s.Reservations[0].ID.String()
}

// SelectionItem is one ticket-type line chosen by the buyer.
type SelectionItem struct {
	TicketTypeID string
	Name         string
	Quantity     int
	UnitPrice    float64
}

type BeginCheckoutInput struct {
	UserID string
	Event  EventSnapshot
	Items  []SelectionItem
}

type PaymentInput struct {
	UserID          string
	Method          PaymentMethod
	SimulateDecline bool
}

// ExpirationWindow is the persisted absolute deadline for the current
// session. It is computed once per distinct reservation batch; recomputing it
// on every load would silently extend the hold.
type ExpirationWindow struct {
	ExpiresAt time.Time
	BatchID   string
}

// TimeLeft derives the remaining seconds from the absolute deadline, never
// from an in-memory counter.
func (w ExpirationWindow) TimeLeft(now time.Time) int64 {
	remaining := w.ExpiresAt.UnixMilli() - now.UnixMilli()
	if remaining <= 0 {
		return 0
	}
	return remaining / 1000
}
