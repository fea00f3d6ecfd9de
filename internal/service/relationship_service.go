package service

import (
	"context"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/repository"
)

// FollowStats 作者主页展示的关注统计
type FollowStats struct {
	Followers  int64 `json:"followers"`
	Followings int64 `json:"followings"`
}

// RelationshipService 关系链服务
type RelationshipService interface {
	// Follow 关注 username 对应的作者；重复关注幂等，关注自己返回 ErrFollowSelf
	Follow(ctx context.Context, user *model.User, username string) error
	// Unfollow 取消关注；未关注时为空操作
	Unfollow(ctx context.Context, user *model.User, username string) error
	IsFollowing(ctx context.Context, userID, authorID uint) (bool, error)
	Stats(ctx context.Context, userID uint) (FollowStats, error)
}

type relationshipService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewRelationshipService(followRepo repository.FollowRepository, userRepo repository.UserRepository) RelationshipService {
	return &relationshipService{followRepo: followRepo, userRepo: userRepo}
}

func (s *relationshipService) Follow(ctx context.Context, user *model.User, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return notFound(err, ErrUserNotFound)
	}
	if user.ID == author.ID {
		return ErrFollowSelf
	}
	return s.followRepo.Create(ctx, user.ID, author.ID)
}

func (s *relationshipService) Unfollow(ctx context.Context, user *model.User, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return notFound(err, ErrUserNotFound)
	}
	return s.followRepo.Delete(ctx, user.ID, author.ID)
}

func (s *relationshipService) IsFollowing(ctx context.Context, userID, authorID uint) (bool, error) {
	if userID == 0 || userID == authorID {
		return false, nil
	}
	return s.followRepo.Exists(ctx, userID, authorID)
}

func (s *relationshipService) Stats(ctx context.Context, userID uint) (FollowStats, error) {
	var st FollowStats
	var err error
	if st.Followers, err = s.followRepo.CountFollowers(ctx, userID); err != nil {
		return st, err
	}
	if st.Followings, err = s.followRepo.CountFollowings(ctx, userID); err != nil {
		return st, err
	}
	return st, nil
}
