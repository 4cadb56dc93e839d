package storage

import (
	"context"
	"sync"

	"github.com/enderpawar/membercore/internal/core/domain"
)

// MemoryCacheAdapter is the cache counterpart to MemoryAdapter. No TTL:
// entries live until deleted, which is fine for its test/local-run role.
type MemoryCacheAdapter struct {
	mu          sync.Mutex
	members     map[string]domain.Member
	idempotency map[string]bool
}

func NewMemoryCacheAdapter() *MemoryCacheAdapter {
	return &MemoryCacheAdapter{
		members:     make(map[string]domain.Member),
		idempotency: make(map[string]bool),
	}
}

func (m *MemoryCacheAdapter) GetMember(ctx context.Context, id string) (domain.Member, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	member, ok := m.members[id]
	return member, ok, nil
}

func (m *MemoryCacheAdapter) SetMember(ctx context.Context, member domain.Member) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[member.ID] = member
	return nil
}

func (m *MemoryCacheAdapter) DeleteMember(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.members, id)
	return nil
}

func (m *MemoryCacheAdapter) SetIdempotency(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.idempotency[key] {
		return false, nil
	}
	m.idempotency[key] = true
	return true, nil
}

func (m *MemoryCacheAdapter) DeleteIdempotency(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.idempotency, key)
	return nil
}
