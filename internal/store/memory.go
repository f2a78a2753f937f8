package store

import (
	"context"
	"sync"

	"github.com/freddytc/checkout-agent/internal/domain"
)

// MemoryStore keeps the checkout state in process memory. Used for tests and
// for runs where surviving a restart does not matter.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) SaveSession(_ context.Context, sess *domain.CheckoutSession) error {
	raw, err := encodeSession(sess)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[KeySession] = raw
	return nil
}

func (s *MemoryStore) LoadSession(_ context.Context) (*domain.CheckoutSession, error) {
	s.mu.Lock()
	raw, ok := s.data[KeySession]
	s.mu.Unlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return decodeSession(raw)
}

func (s *MemoryStore) SaveWindow(_ context.Context, w domain.ExpirationWindow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[KeyExpiration] = encodeExpiration(w)
	s.data[KeyBatchID] = w.BatchID
	return nil
}

func (s *MemoryStore) LoadWindow(_ context.Context) (*domain.ExpirationWindow, error) {
	s.mu.Lock()
	raw, ok := s.data[KeyExpiration]
	batchID := s.data[KeyBatchID]
	s.mu.Unlock()

	if !ok {
		return nil, domain.ErrWindowNotFound
	}
	return decodeExpiration(raw, batchID)
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, KeySession)
	delete(s.data, KeyExpiration)
	delete(s.data, KeyBatchID)
	return nil
}
