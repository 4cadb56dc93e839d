package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, ":50051", cfg.GRPCAddr)
	assert.Equal(t, "fixed", cfg.DiscountPolicy)
	assert.Equal(t, int64(1000), cfg.FixedDiscountAmount)
	assert.Equal(t, int64(10), cfg.RateDiscountPercent)
	assert.Equal(t, 10, cfg.WorkerCount)
}

func TestLoadRatePolicy(t *testing.T) {
	t.Setenv("DISCOUNT_POLICY", "rate")
	t.Setenv("RATE_DISCOUNT_PERCENT", "20")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "rate", cfg.DiscountPolicy)
	assert.Equal(t, int64(20), cfg.RateDiscountPercent)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown policy", "DISCOUNT_POLICY", "coupon"},
		{"negative fixed amount", "FIXED_DISCOUNT_AMOUNT", "-1"},
		{"percent over 100", "RATE_DISCOUNT_PERCENT", "101"},
		{"zero workers", "WORKER_COUNT", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
