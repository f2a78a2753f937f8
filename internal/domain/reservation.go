package domain

import (
	"encoding/json"
	"fmt"
)

// ReservationID is server-assigned and opaque. Some backends return it as a
// JSON number, others as a string; both decode into the string form used in
// the release URL.
type ReservationID string

func (id *ReservationID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ReservationID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("reservation id: %w", err)
	}
	*id = ReservationID(n.String())
	return nil
}

func (id ReservationID) String() string {
	return string(id)
}

// Reservation is a temporary hold on a quantity of one ticket type.
// It exists server-side from creation until released or consumed by a
// completed purchase.
type Reservation struct {
	ID           ReservationID `json:"id"`
	TicketTypeID string        `json:"tipoEntradaId"`
	UserID       string        `json:"usuarioId"`
	Quantity     int           `json:"cantidad"`
}

// LineItem is one selected ticket type with its quantity and pricing.
type LineItem struct {
	TicketTypeID string  `json:"tipoEntradaId"`
	Name         string  `json:"nombre"`
	Quantity     int     `json:"cantidad"`
	UnitPrice    float64 `json:"precio"`
	Subtotal     float64 `json:"subtotal"`
}

type CreateReservationInput struct {
	TicketTypeID string `json:"tipoEntradaId"`
	UserID       string `json:"usuarioId"`
	Quantity     int    `json:"cantidad"`
}

type PurchaseInput struct {
	UserID         string        `json:"usuarioId"`
	TicketTypeID   string        `json:"tipoEntradaId"`
	Quantity       int           `json:"cantidad"`
	ReservationID  ReservationID `json:"reservaId"`
	IdempotencyKey string        `json:"idempotencyKey"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
}

// FormatTimeLeft renders a countdown as M:SS.
func FormatTimeLeft(seconds int64) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
