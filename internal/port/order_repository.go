package port

import (
	"context"
	"errors"

	"github.com/enderpawar/membercore/internal/core/domain"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	// SaveOrder persists a new order
	SaveOrder(ctx context.Context, order domain.Order) error

	// GetOrder retrieves an order by ID, returning ErrOrderNotFound on a miss
	GetOrder(ctx context.Context, id string) (domain.Order, error)

	// UpdateOrderStatus moves an order to a new status
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error

	// ListOrdersByMember retrieves all orders placed by a member, newest first
	ListOrdersByMember(ctx context.Context, memberID string) ([]domain.Order, error)
}
