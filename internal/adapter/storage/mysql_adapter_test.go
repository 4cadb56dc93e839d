package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/enderpawar/membercore/internal/core/domain"
	"github.com/enderpawar/membercore/internal/port"
)

func getMySQL(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/membercore?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	return db
}

func TestMySQLMembers(t *testing.T) {
	db := getMySQL(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	member := domain.Member{
		ID:        uuid.NewString(),
		Name:      "memberA",
		Grade:     domain.GradeVIP,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	defer db.ExecContext(ctx, `DELETE FROM members WHERE id = ?`, member.ID)

	if err := adapter.SaveMember(ctx, member); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	found, err := adapter.GetMember(ctx, member.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if found.Name != member.Name || found.Grade != member.Grade {
		t.Errorf("expected %+v, got %+v", member, found)
	}

	if _, err := adapter.GetMember(ctx, "missing"); !errors.Is(err, port.ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound, got: %v", err)
	}
}

func TestMySQLOrders(t *testing.T) {
	db := getMySQL(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	member := domain.Member{
		ID:        uuid.NewString(),
		Name:      "memberB",
		Grade:     domain.GradeBasic,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := adapter.SaveMember(ctx, member); err != nil {
		t.Fatalf("save member failed: %v", err)
	}
	defer db.ExecContext(ctx, `DELETE FROM members WHERE id = ?`, member.ID)

	now := time.Now().UTC().Truncate(time.Second)
	order := domain.Order{
		ID:             uuid.NewString(),
		MemberID:       member.ID,
		ItemName:       "course-book",
		ItemPrice:      20000,
		Quantity:       2,
		DiscountAmount: 0,
		Status:         domain.OrderStatusConfirmed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	defer db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, order.ID)

	if err := adapter.SaveOrder(ctx, order); err != nil {
		t.Fatalf("save order failed: %v", err)
	}

	found, err := adapter.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if found.PaidPrice() != 40000 {
		t.Errorf("expected paid price 40000, got %d", found.PaidPrice())
	}

	orders, err := adapter.ListOrdersByMember(ctx, member.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}

	if err := adapter.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusCancelled); err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	found, err = adapter.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if found.Status != domain.OrderStatusCancelled {
		t.Errorf("expected cancelled, got %s", found.Status)
	}

	if err := adapter.UpdateOrderStatus(ctx, "missing", domain.OrderStatusCancelled); !errors.Is(err, port.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got: %v", err)
	}
}
