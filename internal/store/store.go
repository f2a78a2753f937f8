package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/freddytc/checkout-agent/internal/domain"
)

// Well-known key namespace for the persisted checkout state. The expiration
// value is an epoch-milliseconds string.
const (
	KeySession    = "checkout-data"
	KeyExpiration = "checkout-expiration"
	KeyBatchID    = "checkout-reserva-id"
)

func encodeSession(s *domain.CheckoutSession) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}
	return string(data), nil
}

func decodeSession(raw string) (*domain.CheckoutSession, error) {
	var s domain.CheckoutSession
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &s, nil
}

func encodeExpiration(w domain.ExpirationWindow) string {
	return strconv.FormatInt(w.ExpiresAt.UnixMilli(), 10)
}

func decodeExpiration(raw, batchID string) (*domain.ExpirationWindow, error) {
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse expiration %q: %w", raw, err)
	}
	return &domain.ExpirationWindow{
		ExpiresAt: time.UnixMilli(ms),
		BatchID:   batchID,
	}, nil
}
