package main

import (
	"context"
	"database/sql"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/enderpawar/membercore/internal/adapter/handler"
	"github.com/enderpawar/membercore/internal/adapter/handler/pb"
	"github.com/enderpawar/membercore/internal/adapter/storage"
	"github.com/enderpawar/membercore/internal/config"
	"github.com/enderpawar/membercore/internal/core/discount"
	"github.com/enderpawar/membercore/internal/core/domain"
	"github.com/enderpawar/membercore/internal/core/service"
	"github.com/enderpawar/membercore/internal/port"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("load config", zap.Error(err))
	}

	logger := newLogger(cfg.LogMode)
	defer logger.Sync()

	// Storage: MySQL when a DSN is configured, in-memory otherwise.
	var members port.MemberRepository
	var orders port.OrderRepository
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			logger.Fatal("failed to connect mysql", zap.Error(err))
		}
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := db.PingContext(ctx); err != nil {
			logger.Fatal("failed to ping mysql", zap.Error(err))
		}
		defer db.Close()
		logger.Info("connected to mysql")

		adapter := storage.NewMySQLAdapter(db)
		members, orders = adapter, adapter
	} else {
		adapter := storage.NewMemoryAdapter()
		members, orders = adapter, adapter
		logger.Info("using in-memory storage")
	}

	// Cache: Redis when an address is configured, in-memory otherwise.
	var cache port.CacheRepository
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			PoolSize: 100,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal("failed to connect redis", zap.Error(err))
		}
		defer rdb.Close()
		logger.Info("connected to redis")

		cache = storage.NewRedisAdapter(rdb)
	} else {
		cache = storage.NewMemoryCacheAdapter()
		logger.Info("using in-memory cache")
	}

	// Discount policy is picked here, at wiring time. The order service only
	// ever sees the interface.
	var policy discount.Policy
	switch cfg.DiscountPolicy {
	case "rate":
		policy = discount.NewRatePolicy(cfg.RateDiscountPercent)
	default:
		policy = discount.NewFixedPolicy(cfg.FixedDiscountAmount)
	}
	logger.Info("discount policy selected", zap.String("policy", cfg.DiscountPolicy))

	memberService := service.NewMemberService(members, cache, logger)
	orderService := service.NewOrderService(members, orders, cache, policy, logger, cfg.QueueSize)

	// Worker pool persisting accepted orders.
	var wg sync.WaitGroup
	for i := 0; i < cfg.WorkerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			workerLoop(id, orderService.Queue(), orders, cache, logger)
		}(i)
	}
	logger.Info("started workers", zap.Int("count", cfg.WorkerCount))

	// gRPC server
	grpcServer := grpc.NewServer()
	pb.RegisterOrderServiceServer(grpcServer, handler.NewGRPCHandler(orderService))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	// HTTP server
	mux := http.NewServeMux()
	handler.NewHTTPHandler(memberService, orderService).Register(mux)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}

	var g errgroup.Group
	g.Go(func() error {
		logger.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()

	if err := g.Wait(); err != nil {
		logger.Error("server error", zap.Error(err))
	}

	// Close order queue and wait for workers to drain it
	orderService.Close()
	wg.Wait()
	logger.Info("workers stopped")
}

func workerLoop(id int, queue <-chan service.QueuedOrder, orders port.OrderRepository, cache port.CacheRepository, logger *zap.Logger) {
	for queued := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		order := queued.Order
		order.Status = domain.OrderStatusConfirmed
		order.UpdatedAt = time.Now()

		if err := orders.SaveOrder(ctx, order); err != nil {
			logger.Error("failed to save order",
				zap.Int("worker", id),
				zap.String("order_id", order.ID),
				zap.Error(err),
			)

			// Release the idempotency key so the client may retry.
			if delErr := cache.DeleteIdempotency(ctx, queued.IdempotencyKey); delErr != nil {
				logger.Error("CRITICAL: idempotency release failed",
					zap.Int("worker", id),
					zap.String("order_id", order.ID),
					zap.Error(delErr),
				)
			}
		} else {
			logger.Debug("saved order",
				zap.Int("worker", id),
				zap.String("order_id", order.ID),
			)
		}

		cancel()
	}
}

func newLogger(mode string) *zap.Logger {
	var logger *zap.Logger
	var err error
	switch mode {
	case "production":
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
