package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/enderpawar/membercore/internal/core/discount"
	"github.com/enderpawar/membercore/internal/core/domain"
	"github.com/enderpawar/membercore/internal/port"
)

var (
	ErrDuplicateRequest = errors.New("duplicate request")
	ErrInvalidOrder     = errors.New("invalid order")
)

// QueuedOrder pairs an accepted order with the idempotency key that admitted
// it, so a worker can release the key if persistence fails.
type QueuedOrder struct {
	Order          domain.Order
	IdempotencyKey string
}

type OrderService struct {
	members    port.MemberRepository
	orders     port.OrderRepository
	cache      port.CacheRepository
	policy     discount.Policy
	logger     *zap.Logger
	orderQueue chan QueuedOrder
}

func NewOrderService(
	members port.MemberRepository,
	orders port.OrderRepository,
	cache port.CacheRepository,
	policy discount.Policy,
	logger *zap.Logger,
	queueSize int,
) *OrderService {
	return &OrderService{
		members:    members,
		orders:     orders,
		cache:      cache,
		policy:     policy,
		logger:     logger,
		orderQueue: make(chan QueuedOrder, queueSize),
	}
}

// Create accepts an order: idempotency check, member lookup, discount from
// the injected policy, then hand-off to the persistence queue. The returned
// order is pending until a worker confirms it.
func (s *OrderService) Create(ctx context.Context, requestID, memberID, itemName string, itemPrice int64, quantity int) (domain.Order, error) {
	if requestID == "" || itemName == "" || itemPrice < 0 || quantity <= 0 {
		return domain.Order{}, ErrInvalidOrder
	}

	idempotencyKey := fmt.Sprintf("order:req:%s", requestID)

	ok, err := s.cache.SetIdempotency(ctx, idempotencyKey)
	if err != nil {
		return domain.Order{}, fmt.Errorf("idempotency check failed: %w", err)
	}
	if !ok {
		return domain.Order{}, ErrDuplicateRequest
	}

	member, err := s.members.GetMember(ctx, memberID)
	if err != nil {
		// release the key so a corrected request can reuse the ID
		if delErr := s.cache.DeleteIdempotency(ctx, idempotencyKey); delErr != nil {
			s.logger.Warn("idempotency release failed", zap.String("key", idempotencyKey), zap.Error(delErr))
		}
		return domain.Order{}, err
	}

	now := time.Now()
	order := domain.Order{
		ID:        uuid.NewString(),
		MemberID:  member.ID,
		ItemName:  itemName,
		ItemPrice: itemPrice,
		Quantity:  quantity,
		Status:    domain.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	order.DiscountAmount = s.policy.Discount(member, order.Subtotal())

	s.orderQueue <- QueuedOrder{Order: order, IdempotencyKey: idempotencyKey}

	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (domain.Order, error) {
	return s.orders.GetOrder(ctx, id)
}

// Cancel moves a persisted order to cancelled. Orders still in the queue
// cannot be cancelled; callers see ErrOrderNotFound until a worker lands them.
func (s *OrderService) Cancel(ctx context.Context, id string) (domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if order.Status == domain.OrderStatusCancelled {
		return order, nil
	}

	if err := s.orders.UpdateOrderStatus(ctx, id, domain.OrderStatusCancelled); err != nil {
		return domain.Order{}, err
	}
	return s.orders.GetOrder(ctx, id)
}

func (s *OrderService) ListByMember(ctx context.Context, memberID string) ([]domain.Order, error) {
	return s.orders.ListOrdersByMember(ctx, memberID)
}

func (s *OrderService) Queue() <-chan QueuedOrder {
	return s.orderQueue
}

func (s *OrderService) Close() {
	close(s.orderQueue)
}
