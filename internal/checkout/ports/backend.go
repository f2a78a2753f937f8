package ports

import (
	"context"

	"github.com/freddytc/checkout-agent/internal/domain"
)

type BackendClient interface {
	CreateReservation(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	ReleaseReservation(ctx context.Context, id domain.ReservationID) error
	PurchaseTicket(ctx context.Context, input domain.PurchaseInput) error
}
