package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/enderpawar/membercore/internal/core/domain"
)

const (
	memberKeyPrefix   = "member:"
	memberCacheTTL    = 10 * time.Minute
	idempotencyKeyTTL = 24 * time.Hour
)

type cachedMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Grade     string    `json:"grade"`
	CreatedAt time.Time `json:"created_at"`
}

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) GetMember(ctx context.Context, id string) (domain.Member, bool, error) {
	raw, err := r.client.Get(ctx, memberKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Member{}, false, nil
	}
	if err != nil {
		return domain.Member{}, false, err
	}

	var cached cachedMember
	if err := json.Unmarshal(raw, &cached); err != nil {
		return domain.Member{}, false, fmt.Errorf("decode cached member: %w", err)
	}

	return domain.Member{
		ID:        cached.ID,
		Name:      cached.Name,
		Grade:     domain.Grade(cached.Grade),
		CreatedAt: cached.CreatedAt,
	}, true, nil
}

func (r *RedisAdapter) SetMember(ctx context.Context, member domain.Member) error {
	raw, err := json.Marshal(cachedMember{
		ID:        member.ID,
		Name:      member.Name,
		Grade:     string(member.Grade),
		CreatedAt: member.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode member: %w", err)
	}
	return r.client.Set(ctx, memberKeyPrefix+member.ID, raw, memberCacheTTL).Err()
}

func (r *RedisAdapter) DeleteMember(ctx context.Context, id string) error {
	return r.client.Del(ctx, memberKeyPrefix+id).Err()
}

func (r *RedisAdapter) SetIdempotency(ctx context.Context, key string) (bool, error) {
	ok, err := r.client.SetNX(ctx, key, 1, idempotencyKeyTTL).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (r *RedisAdapter) DeleteIdempotency(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
