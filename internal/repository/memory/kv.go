// Package memory provides in-memory implementations of the persistence
// interfaces. They back the single-binary dev mode and the unit tests.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/archeolens/archeolens-server/internal/model"
)

var _ model.KVStore = (*KVStore)(nil)

// KVStore is a thread-safe map store. Insertion order of keys is tracked so
// prefix scans behave like the durable store.
type KVStore struct {
	mu    sync.RWMutex
	data  map[string]json.RawMessage
	order []string
}

func NewKVStore() *KVStore {
	return &KVStore{
		data: make(map[string]json.RawMessage),
	}
}

func (s *KVStore) Get(_ context.Context, key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, model.ErrNotFound
	}

	return value, nil
}

func (s *KVStore) Set(_ context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		s.order = append(s.order, key)
	}
	s.data[key] = encoded

	return nil
}

func (s *KVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return model.ErrNotFound
	}
	delete(s.data, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

func (s *KVStore) GetByPrefix(_ context.Context, prefix string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make([]json.RawMessage, 0)
	for _, key := range s.order {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			values = append(values, s.data[key])
		}
	}

	return values, nil
}
