package dto

import (
	"time"

	"github.com/freddytc/checkout-agent/internal/domain"
)

type CheckoutResponse struct {
	Event        EventResponse         `json:"evento"`
	Items        []SelectionResponse   `json:"seleccion"`
	Reservations []ReservationResponse `json:"reservas"`
	Total        float64               `json:"total"`
	TimeLeft     int64                 `json:"time_left_seconds"`
	Countdown    string                `json:"countdown"`
}

type EventResponse struct {
	ID       string `json:"id"`
	Name     string `json:"nombre"`
	Date     string `json:"fechaEvento"`
	Location string `json:"ubicacion"`
}

type SelectionResponse struct {
	TicketTypeID string  `json:"tipoEntradaId"`
	Name         string  `json:"nombre"`
	Quantity     int     `json:"cantidad"`
	UnitPrice    float64 `json:"precio"`
	Subtotal     float64 `json:"subtotal"`
}

type ReservationResponse struct {
	ID           string `json:"id"`
	TicketTypeID string `json:"tipoEntradaId"`
	Quantity     int    `json:"cantidad"`
}

type PurchaseResponse struct {
	Status string  `json:"status"`
	Total  float64 `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToCheckoutResponse(s *domain.CheckoutSession, timeLeft int64) CheckoutResponse {
	items := make([]SelectionResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SelectionResponse{
			TicketTypeID: it.TicketTypeID,
			Name:         it.Name,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Subtotal:     it.Subtotal,
		})
	}

	reservations := make([]ReservationResponse, 0, len(s.Reservations))
	for _, r := range s.Reservations {
		reservations = append(reservations, ReservationResponse{
			ID:           r.ID.String(),
			TicketTypeID: r.TicketTypeID,
			Quantity:     r.Quantity,
		})
	}

	return CheckoutResponse{
		Event: EventResponse{
			ID:       s.Event.ID,
			Name:     s.Event.Name,
			Date:     s.Event.Date.Format(time.RFC3339),
			Location: s.Event.Location,
		},
		Items:        items,
		Reservations: reservations,
		Total:        s.Total,
		TimeLeft:     timeLeft,
		Countdown:    domain.FormatTimeLeft(timeLeft),
	}
}
