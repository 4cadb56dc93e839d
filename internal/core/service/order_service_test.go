package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/enderpawar/membercore/internal/core/discount"
	"github.com/enderpawar/membercore/internal/core/domain"
	"github.com/enderpawar/membercore/internal/port"
)

// Mock repositories

type mockMemberRepo struct {
	mu      sync.Mutex
	members map[string]domain.Member
}

func newMockMemberRepo(members ...domain.Member) *mockMemberRepo {
	m := &mockMemberRepo{members: make(map[string]domain.Member)}
	for _, member := range members {
		m.members[member.ID] = member
	}
	return m
}

func (m *mockMemberRepo) SaveMember(ctx context.Context, member domain.Member) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[member.ID] = member
	return nil
}

func (m *mockMemberRepo) GetMember(ctx context.Context, id string) (domain.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	member, ok := m.members[id]
	if !ok {
		return domain.Member{}, port.ErrMemberNotFound
	}
	return member, nil
}

type mockOrderRepo struct {
	mu      sync.Mutex
	orders  map[string]domain.Order
	saveErr error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]domain.Order)}
}

func (m *mockOrderRepo) SaveOrder(ctx context.Context, order domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return domain.Order{}, port.ErrOrderNotFound
	}
	return order, nil
}

func (m *mockOrderRepo) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return port.ErrOrderNotFound
	}
	order.Status = status
	m.orders[id] = order
	return nil
}

func (m *mockOrderRepo) ListOrdersByMember(ctx context.Context, memberID string) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []domain.Order
	for _, order := range m.orders {
		if order.MemberID == memberID {
			result = append(result, order)
		}
	}
	return result, nil
}

type mockCacheRepo struct {
	mu          sync.Mutex
	members     map[string]domain.Member
	idempotency map[string]bool
	getErr      error
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{
		members:     make(map[string]domain.Member),
		idempotency: make(map[string]bool),
	}
}

func (m *mockCacheRepo) GetMember(ctx context.Context, id string) (domain.Member, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return domain.Member{}, false, m.getErr
	}
	member, ok := m.members[id]
	return member, ok, nil
}

func (m *mockCacheRepo) SetMember(ctx context.Context, member domain.Member) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[member.ID] = member
	return nil
}

func (m *mockCacheRepo) DeleteMember(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.members, id)
	return nil
}

func (m *mockCacheRepo) SetIdempotency(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.idempotency[key] {
		return false, nil
	}
	m.idempotency[key] = true
	return true, nil
}

func (m *mockCacheRepo) DeleteIdempotency(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.idempotency, key)
	return nil
}

func vipMember() domain.Member {
	return domain.Member{
		ID:        "member-1",
		Name:      "memberA",
		Grade:     domain.GradeVIP,
		CreatedAt: time.Now(),
	}
}

func newTestOrderService(members *mockMemberRepo, orders *mockOrderRepo, cache *mockCacheRepo) *OrderService {
	return NewOrderService(members, orders, cache, discount.NewFixedPolicy(1000), zap.NewNop(), 100)
}

func TestCreate_Success(t *testing.T) {
	members := newMockMemberRepo(vipMember())
	orders := newMockOrderRepo()
	cache := newMockCacheRepo()
	svc := newTestOrderService(members, orders, cache)
	defer svc.Close()

	order, err := svc.Create(context.Background(), "req-1", "member-1", "course-book", 20000, 1)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if order.DiscountAmount != 1000 {
		t.Errorf("expected discount 1000, got %d", order.DiscountAmount)
	}
	if order.PaidPrice() != 19000 {
		t.Errorf("expected paid price 19000, got %d", order.PaidPrice())
	}
	if order.Status != domain.OrderStatusPending {
		t.Errorf("expected pending status, got %s", order.Status)
	}
}

func TestCreate_BasicMemberGetsNoDiscount(t *testing.T) {
	basic := vipMember()
	basic.ID = "member-2"
	basic.Grade = domain.GradeBasic

	members := newMockMemberRepo(basic)
	svc := newTestOrderService(members, newMockOrderRepo(), newMockCacheRepo())
	defer svc.Close()

	order, err := svc.Create(context.Background(), "req-1", "member-2", "course-book", 20000, 1)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if order.DiscountAmount != 0 {
		t.Errorf("expected no discount, got %d", order.DiscountAmount)
	}
}

func TestCreate_DuplicateRequest(t *testing.T) {
	members := newMockMemberRepo(vipMember())
	cache := newMockCacheRepo()
	svc := newTestOrderService(members, newMockOrderRepo(), cache)
	defer svc.Close()

	go func() {
		for range svc.Queue() {
		}
	}()

	if _, err := svc.Create(context.Background(), "req-1", "member-1", "course-book", 20000, 1); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), "req-1", "member-1", "course-book", 20000, 1)
	if !errors.Is(err, ErrDuplicateRequest) {
		t.Errorf("expected ErrDuplicateRequest, got: %v", err)
	}
}

func TestCreate_MemberNotFound(t *testing.T) {
	cache := newMockCacheRepo()
	svc := newTestOrderService(newMockMemberRepo(), newMockOrderRepo(), cache)
	defer svc.Close()

	_, err := svc.Create(context.Background(), "req-1", "nobody", "course-book", 20000, 1)
	if !errors.Is(err, port.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got: %v", err)
	}

	// the idempotency key must be released so the request ID stays usable
	if cache.idempotency["order:req:req-1"] {
		t.Error("expected idempotency key to be released")
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestOrderService(newMockMemberRepo(vipMember()), newMockOrderRepo(), newMockCacheRepo())
	defer svc.Close()

	tests := []struct {
		name      string
		requestID string
		itemName  string
		itemPrice int64
		quantity  int
	}{
		{"empty request id", "", "book", 1000, 1},
		{"empty item name", "req-1", "", 1000, 1},
		{"negative price", "req-1", "book", -1, 1},
		{"zero quantity", "req-1", "book", 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.requestID, "member-1", tt.itemName, tt.itemPrice, tt.quantity)
			if !errors.Is(err, ErrInvalidOrder) {
				t.Errorf("expected ErrInvalidOrder, got: %v", err)
			}
		})
	}
}

func TestCreate_OrderQueued(t *testing.T) {
	svc := newTestOrderService(newMockMemberRepo(vipMember()), newMockOrderRepo(), newMockCacheRepo())

	order, err := svc.Create(context.Background(), "req-1", "member-1", "course-book", 20000, 2)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	queued := <-svc.Queue()

	if queued.Order.ID != order.ID {
		t.Errorf("expected order %s on queue, got %s", order.ID, queued.Order.ID)
	}
	if queued.IdempotencyKey != "order:req:req-1" {
		t.Errorf("unexpected idempotency key %s", queued.IdempotencyKey)
	}
	if queued.Order.Subtotal() != 40000 {
		t.Errorf("expected subtotal 40000, got %d", queued.Order.Subtotal())
	}

	svc.Close()
}

func TestCreate_Concurrent(t *testing.T) {
	totalRequests := 50

	svc := newTestOrderService(newMockMemberRepo(vipMember()), newMockOrderRepo(), newMockCacheRepo())
	defer svc.Close()

	go func() {
		for range svc.Queue() {
		}
	}()

	var successCount, duplicateCount atomic.Int32
	var wg sync.WaitGroup

	// every pair of goroutines shares a request ID; exactly one of each pair wins
	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			requestID := fmt.Sprintf("req-%d", i/2)
			_, err := svc.Create(context.Background(), requestID, "member-1", "course-book", 20000, 1)
			if err == nil {
				successCount.Add(1)
			} else if errors.Is(err, ErrDuplicateRequest) {
				duplicateCount.Add(1)
			}
		}(i)
	}
	wg.Wait()

	if successCount.Load() != int32(totalRequests/2) {
		t.Errorf("expected %d successes, got %d", totalRequests/2, successCount.Load())
	}
	if duplicateCount.Load() != int32(totalRequests/2) {
		t.Errorf("expected %d duplicates, got %d", totalRequests/2, duplicateCount.Load())
	}
}

func TestCancel(t *testing.T) {
	orders := newMockOrderRepo()
	svc := newTestOrderService(newMockMemberRepo(), orders, newMockCacheRepo())
	defer svc.Close()

	orders.orders["order-1"] = domain.Order{
		ID:       "order-1",
		MemberID: "member-1",
		Status:   domain.OrderStatusConfirmed,
	}

	order, err := svc.Cancel(context.Background(), "order-1")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if order.Status != domain.OrderStatusCancelled {
		t.Errorf("expected cancelled status, got %s", order.Status)
	}

	// cancelling again is a no-op
	order, err = svc.Cancel(context.Background(), "order-1")
	if err != nil {
		t.Fatalf("second cancel failed: %v", err)
	}
	if order.Status != domain.OrderStatusCancelled {
		t.Errorf("expected cancelled status, got %s", order.Status)
	}

	if _, err := svc.Cancel(context.Background(), "missing"); !errors.Is(err, port.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got: %v", err)
	}
}
