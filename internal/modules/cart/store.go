package cart

import (
	"context"
	"sync"
)

// Store persists one ledger per customer.
type Store interface {
	// Load returns the customer's ledger, or a fresh empty one if none exists.
	Load(ctx context.Context, customerEmail string) (*Ledger, error)

	Save(ctx context.Context, customerEmail string, l *Ledger) error

	// Clear discards the customer's ledger. Absent carts are a no-op.
	Clear(ctx context.Context, customerEmail string) error
}

// MemoryStore keeps carts in process memory. It is the fallback when no
// Redis URL is configured; carts do not survive a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*Ledger
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]*Ledger)}
}

func (s *MemoryStore) Load(ctx context.Context, customerEmail string) (*Ledger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l, ok := s.carts[customerEmail]; ok {
		cp := &Ledger{Lines: append([]Item(nil), l.Lines...), MergeDuplicates: l.MergeDuplicates}
		return cp, nil
	}
	return NewLedger(), nil
}

func (s *MemoryStore) Save(ctx context.Context, customerEmail string, l *Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[customerEmail] = &Ledger{Lines: append([]Item(nil), l.Lines...), MergeDuplicates: l.MergeDuplicates}
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, customerEmail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, customerEmail)
	return nil
}
