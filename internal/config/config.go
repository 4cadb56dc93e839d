package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full server configuration, loaded from the environment.
// Leaving MYSQL_DSN or REDIS_ADDR empty selects the in-memory adapters,
// which is how local runs and most tests operate.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	GRPCAddr string `env:"GRPC_ADDR" envDefault:":50051"`

	MySQLDSN  string `env:"MYSQL_DSN"`
	RedisAddr string `env:"REDIS_ADDR"`

	// fixed or rate; decided here, never inside the order service
	DiscountPolicy      string `env:"DISCOUNT_POLICY" envDefault:"fixed"`
	FixedDiscountAmount int64  `env:"FIXED_DISCOUNT_AMOUNT" envDefault:"1000"`
	RateDiscountPercent int64  `env:"RATE_DISCOUNT_PERCENT" envDefault:"10"`

	WorkerCount int `env:"WORKER_COUNT" envDefault:"10"`
	QueueSize   int `env:"QUEUE_SIZE" envDefault:"10000"`

	LogMode string `env:"LOG_MODE" envDefault:"development"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.DiscountPolicy {
	case "fixed", "rate":
	default:
		return fmt.Errorf("unknown discount policy %q", c.DiscountPolicy)
	}
	if c.FixedDiscountAmount < 0 {
		return fmt.Errorf("fixed discount amount must not be negative")
	}
	if c.RateDiscountPercent < 0 || c.RateDiscountPercent > 100 {
		return fmt.Errorf("rate discount percent must be within 0..100")
	}
	if c.WorkerCount <= 0 || c.QueueSize <= 0 {
		return fmt.Errorf("worker count and queue size must be positive")
	}
	return nil
}
