package port

import (
	"context"

	"github.com/enderpawar/membercore/internal/core/domain"
)

type CacheRepository interface {
	// GetMember returns the cached member and whether the key was present
	GetMember(ctx context.Context, id string) (domain.Member, bool, error)

	// SetMember caches a member with the adapter's TTL
	SetMember(ctx context.Context, member domain.Member) error

	// DeleteMember drops a cached member (on writes)
	DeleteMember(ctx context.Context, id string) error

	// SetIdempotency sets a key for idempotency check, returns false if already exists
	SetIdempotency(ctx context.Context, key string) (bool, error)

	// DeleteIdempotency releases a key so a failed request may be retried
	DeleteIdempotency(ctx context.Context, key string) error
}
