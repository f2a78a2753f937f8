package ports

import (
	"context"

	"github.com/freddytc/checkout-agent/internal/domain"
)

type CheckoutNotifier interface {
	NotifyHoldExpired(ctx context.Context, s *domain.CheckoutSession)
	NotifyCheckoutCancelled(ctx context.Context, s *domain.CheckoutSession)
	NotifyPurchaseCompleted(ctx context.Context, s *domain.CheckoutSession)
}
