package database

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore é uma implementação de Store em memória, usada nos testes.
// Os valores passam por um ciclo completo de JSON na gravação para que a
// fidelidade de serialização seja a mesma do store em arquivo.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStore cria um novo store em memória, vazio
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]byte),
	}
}

// Read implementa Store.Read
func (s *MemoryStore) Read(key string, out interface{}) error {
	s.mu.RLock()
	raw, ok := s.records[key]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("erro ao decodificar registro %s: %w", key, err)
	}

	return nil
}

// Write implementa Store.Write
func (s *MemoryStore) Write(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("erro ao codificar registro %s: %w", key, err)
	}

	s.mu.Lock()
	s.records[key] = raw
	s.mu.Unlock()

	return nil
}

// Close implementa Store.Close
func (s *MemoryStore) Close() error {
	return nil
}
