package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/enderpawar/membercore/internal/adapter/storage"
	"github.com/enderpawar/membercore/internal/core/discount"
	"github.com/enderpawar/membercore/internal/core/domain"
	"github.com/enderpawar/membercore/internal/core/service"
)

// loadgen drives the order pipeline directly against Redis to measure how
// the idempotency gate and the worker queue behave under concurrent load.
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "redis address")
	requests := flag.Int("n", 500, "total order requests")
	duplicates := flag.Int("dup", 50, "requests reusing an already-seen request ID")
	queueSize := flag.Int("queue", 1000, "order queue size")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{Addr: *redisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect redis", zap.Error(err))
	}
	defer rdb.Close()

	// Clear previous run's idempotency keys.
	keys, _ := rdb.Keys(ctx, "order:req:loadgen-*").Result()
	for _, k := range keys {
		rdb.Del(ctx, k)
	}

	cache := storage.NewRedisAdapter(rdb)
	store := storage.NewMemoryAdapter()

	member := domain.Member{
		ID:        "loadgen-member",
		Name:      "loadgen",
		Grade:     domain.GradeVIP,
		CreatedAt: time.Now(),
	}
	if err := store.SaveMember(ctx, member); err != nil {
		logger.Fatal("failed to seed member", zap.Error(err))
	}

	orderService := service.NewOrderService(store, store, cache, discount.NewRatePolicy(10), logger, *queueSize)
	defer orderService.Close()

	// Drain the order queue in background, persisting as the server would.
	go func() {
		for queued := range orderService.Queue() {
			order := queued.Order
			order.Status = domain.OrderStatusConfirmed
			if err := store.SaveOrder(ctx, order); err != nil {
				logger.Error("failed to save order", zap.Error(err))
			}
		}
	}()

	var successCount, duplicateCount, failCount atomic.Int32
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < *requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			requestID := fmt.Sprintf("loadgen-%d", i)
			if i < *duplicates {
				// collide with another goroutine's request ID
				requestID = fmt.Sprintf("loadgen-%d", i+*duplicates)
			}

			_, err := orderService.Create(ctx, requestID, member.ID, "course-book", 20000, 1)
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, service.ErrDuplicateRequest):
				duplicateCount.Add(1)
			default:
				failCount.Add(1)
			}
		}(i)
	}
	wg.Wait()
	elapsed := time.Since(start)

	// give the drain goroutine a moment to land the tail of the queue
	time.Sleep(200 * time.Millisecond)

	placed, err := store.ListOrdersByMember(ctx, member.ID)
	if err != nil {
		logger.Fatal("failed to list orders", zap.Error(err))
	}

	logger.Info("loadgen finished",
		zap.Int("requests", *requests),
		zap.Int32("accepted", successCount.Load()),
		zap.Int32("duplicates", duplicateCount.Load()),
		zap.Int32("failed", failCount.Load()),
		zap.Int("persisted", len(placed)),
		zap.Duration("elapsed", elapsed),
	)

	if failCount.Load() > 0 {
		logger.Warn("unexpected failures; check redis connectivity")
	}
}
