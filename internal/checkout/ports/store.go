package ports

import (
	"context"

	"github.com/freddytc/checkout-agent/internal/domain"
)

type SessionStore interface {
	SaveSession(ctx context.Context, s *domain.CheckoutSession) error
	LoadSession(ctx context.Context) (*domain.CheckoutSession, error)
	SaveWindow(ctx context.Context, w domain.ExpirationWindow) error
	LoadWindow(ctx context.Context) (*domain.ExpirationWindow, error)
	Clear(ctx context.Context) error
}
