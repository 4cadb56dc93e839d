package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID             string
	MemberID       string
	ItemName       string
	ItemPrice      int64
	Quantity       int
	DiscountAmount int64
	Status         OrderStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Subtotal is the price before any discount.
func (o Order) Subtotal() int64 {
	return o.ItemPrice * int64(o.Quantity)
}

// PaidPrice is what the member actually pays.
func (o Order) PaidPrice() int64 {
	return o.Subtotal() - o.DiscountAmount
}
