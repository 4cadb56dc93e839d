package port

import (
	"context"
	"errors"

	"github.com/enderpawar/membercore/internal/core/domain"
)

var ErrMemberNotFound = errors.New("member not found")

type MemberRepository interface {
	// SaveMember persists a new member
	SaveMember(ctx context.Context, member domain.Member) error

	// GetMember retrieves a member by ID, returning ErrMemberNotFound on a miss
	GetMember(ctx context.Context, id string) (domain.Member, error)
}
