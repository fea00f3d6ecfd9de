package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/repository"
)

var slugRe = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// GroupService 分组服务；Create 只供管理命令使用
type GroupService interface {
	Create(ctx context.Context, title, slug, description string) (*model.Group, error)
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	List(ctx context.Context) ([]*model.Group, error)
}

type groupService struct {
	groups repository.GroupRepository
}

func NewGroupService(groups repository.GroupRepository) GroupService {
	return &groupService{groups: groups}
}

func (s *groupService) Create(ctx context.Context, title, slug, description string) (*model.Group, error) {
	slug = strings.TrimSpace(slug)
	if !slugRe.MatchString(slug) {
		return nil, ErrInvalidSlug
	}
	_, err := s.groups.GetBySlug(ctx, slug)
	switch {
	case err == nil:
		return nil, ErrSlugTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}
	g := &model.Group{Title: strings.TrimSpace(title), Slug: slug, Description: description}
	if err := s.groups.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *groupService) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	g, err := s.groups.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err, ErrGroupNotFound)
	}
	return g, nil
}

func (s *groupService) List(ctx context.Context) ([]*model.Group, error) {
	return s.groups.List(ctx)
}
