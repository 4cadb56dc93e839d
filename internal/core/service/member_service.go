package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/enderpawar/membercore/internal/core/domain"
	"github.com/enderpawar/membercore/internal/port"
)

var ErrEmptyName = errors.New("member name required")

type MemberService struct {
	members port.MemberRepository
	cache   port.CacheRepository
	logger  *zap.Logger
}

func NewMemberService(members port.MemberRepository, cache port.CacheRepository, logger *zap.Logger) *MemberService {
	return &MemberService{
		members: members,
		cache:   cache,
		logger:  logger,
	}
}

// Join registers a new member. The grade must already be parsed; callers
// validate raw input at the edge.
func (s *MemberService) Join(ctx context.Context, name string, grade domain.Grade) (domain.Member, error) {
	if name == "" {
		return domain.Member{}, ErrEmptyName
	}
	if _, err := domain.ParseGrade(string(grade)); err != nil {
		return domain.Member{}, err
	}

	member := domain.Member{
		ID:        uuid.NewString(),
		Name:      name,
		Grade:     grade,
		CreatedAt: time.Now(),
	}

	if err := s.members.SaveMember(ctx, member); err != nil {
		return domain.Member{}, fmt.Errorf("save member: %w", err)
	}

	s.logger.Info("member joined",
		zap.String("member_id", member.ID),
		zap.String("grade", string(member.Grade)),
	)

	return member, nil
}

// Find looks a member up, cache first. A cache failure is logged and the
// repository answers; a repository miss is port.ErrMemberNotFound.
func (s *MemberService) Find(ctx context.Context, id string) (domain.Member, error) {
	member, ok, err := s.cache.GetMember(ctx, id)
	if err != nil {
		s.logger.Warn("member cache read failed", zap.String("member_id", id), zap.Error(err))
	} else if ok {
		return member, nil
	}

	member, err = s.members.GetMember(ctx, id)
	if err != nil {
		return domain.Member{}, err
	}

	if err := s.cache.SetMember(ctx, member); err != nil {
		s.logger.Warn("member cache write failed", zap.String("member_id", id), zap.Error(err))
	}

	return member, nil
}
