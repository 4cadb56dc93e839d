package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/enderpawar/membercore/internal/core/domain"
	"github.com/enderpawar/membercore/internal/port"
)

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) SaveMember(ctx context.Context, member domain.Member) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO members (id, name, grade, created_at)
		VALUES (?, ?, ?, ?)`,
		member.ID, member.Name, member.Grade, member.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) GetMember(ctx context.Context, id string) (domain.Member, error) {
	var member domain.Member
	var grade string
	err := m.db.QueryRowContext(ctx, `
		SELECT id, name, grade, created_at
		FROM members WHERE id = ?`, id,
	).Scan(&member.ID, &member.Name, &grade, &member.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Member{}, port.ErrMemberNotFound
	}
	if err != nil {
		return domain.Member{}, fmt.Errorf("query member: %w", err)
	}

	member.Grade = domain.Grade(grade)
	return member, nil
}

func (m *MySQLAdapter) SaveOrder(ctx context.Context, order domain.Order) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// the member row must still exist; the FK makes a vanished member an error
	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, member_id, item_name, item_price, quantity, discount_amount, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.MemberID, order.ItemName, order.ItemPrice, order.Quantity,
		order.DiscountAmount, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	return tx.Commit()
}

func (m *MySQLAdapter) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	result, err := m.db.ExecContext(ctx, `
		UPDATE orders SET status = ?, updated_at = NOW() WHERE id = ?`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return port.ErrOrderNotFound
	}
	return nil
}

func (m *MySQLAdapter) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	row := m.db.QueryRowContext(ctx, `
		SELECT id, member_id, item_name, item_price, quantity, discount_amount, status, created_at, updated_at
		FROM orders WHERE id = ?`, id,
	)
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, port.ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("query order: %w", err)
	}
	return order, nil
}

func (m *MySQLAdapter) ListOrdersByMember(ctx context.Context, memberID string) ([]domain.Order, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, member_id, item_name, item_price, quantity, discount_amount, status, created_at, updated_at
		FROM orders WHERE member_id = ? ORDER BY created_at DESC`, memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var order domain.Order
	var status string
	err := row.Scan(
		&order.ID, &order.MemberID, &order.ItemName, &order.ItemPrice,
		&order.Quantity, &order.DiscountAmount, &status,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return domain.Order{}, err
	}
	order.Status = domain.OrderStatus(status)
	return order, nil
}
