package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/enderpawar/membercore/internal/core/domain"
	"github.com/enderpawar/membercore/internal/port"
)

// MemoryAdapter keeps members and orders in process memory. It backs tests
// and local runs where MySQL is not wanted; the service layer cannot tell
// it apart from the real thing.
type MemoryAdapter struct {
	mu      sync.RWMutex
	members map[string]domain.Member
	orders  map[string]domain.Order
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		members: make(map[string]domain.Member),
		orders:  make(map[string]domain.Order),
	}
}

func (m *MemoryAdapter) SaveMember(ctx context.Context, member domain.Member) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[member.ID] = member
	return nil
}

func (m *MemoryAdapter) GetMember(ctx context.Context, id string) (domain.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	member, ok := m.members[id]
	if !ok {
		return domain.Member{}, port.ErrMemberNotFound
	}
	return member, nil
}

func (m *MemoryAdapter) SaveOrder(ctx context.Context, order domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.ID] = order
	return nil
}

func (m *MemoryAdapter) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[id]
	if !ok {
		return port.ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	m.orders[id] = order
	return nil
}

func (m *MemoryAdapter) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	order, ok := m.orders[id]
	if !ok {
		return domain.Order{}, port.ErrOrderNotFound
	}
	return order, nil
}

func (m *MemoryAdapter) ListOrdersByMember(ctx context.Context, memberID string) ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []domain.Order
	for _, order := range m.orders {
		if order.MemberID == memberID {
			result = append(result, order)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
