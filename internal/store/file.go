package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/freddytc/checkout-agent/internal/domain"
)

// FileStore persists the checkout state as a single JSON document on disk so
// an in-flight checkout survives an agent restart.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) SaveSession(_ context.Context, sess *domain.CheckoutSession) error {
	raw, err := encodeSession(sess)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(data map[string]string) {
		data[KeySession] = raw
	})
}

func (s *FileStore) LoadSession(_ context.Context) (*domain.CheckoutSession, error) {
	s.mu.Lock()
	data, err := s.read()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	raw, ok := data[KeySession]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return decodeSession(raw)
}

func (s *FileStore) SaveWindow(_ context.Context, w domain.ExpirationWindow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(data map[string]string) {
		data[KeyExpiration] = encodeExpiration(w)
		data[KeyBatchID] = w.BatchID
	})
}

func (s *FileStore) LoadWindow(_ context.Context) (*domain.ExpirationWindow, error) {
	s.mu.Lock()
	data, err := s.read()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	raw, ok := data[KeyExpiration]
	if !ok {
		return nil, domain.ErrWindowNotFound
	}
	return decodeExpiration(raw, data[KeyBatchID])
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove state file: %w", err)
	}
	return nil
}

func (s *FileStore) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	data := map[string]string{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}
	return data, nil
}

func (s *FileStore) update(mutate func(map[string]string)) error {
	data, err := s.read()
	if err != nil {
		return err
	}

	mutate(data)

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	// Write-then-rename so a crash mid-write never leaves a torn file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
