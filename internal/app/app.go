// Package app 组装仓储、服务与路由。
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/d60-Lab/yatube/config"
	"github.com/d60-Lab/yatube/internal/api/handler"
	"github.com/d60-Lab/yatube/internal/api/router"
	"github.com/d60-Lab/yatube/internal/auth"
	"github.com/d60-Lab/yatube/internal/cache"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/internal/storage"
	"github.com/d60-Lab/yatube/internal/web"
)

// Services 对外暴露的服务，供命令行与测试使用
type Services struct {
	Posts         service.PostService
	Relationships service.RelationshipService
	Users         service.UserService
	Groups        service.GroupService
}

// NewServices 基于 db 构建全部服务
func NewServices(db *gorm.DB, pages cache.PageCache, media storage.Storage) *Services {
	postRepo := repository.NewPostRepository(db)
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	return &Services{
		Posts: service.NewPostService(
			postRepo,
			repository.NewCommentRepository(db),
			groupRepo,
			userRepo,
			media,
			pages,
		),
		Relationships: service.NewRelationshipService(repository.NewFollowRepository(db), userRepo),
		Users:         service.NewUserService(userRepo),
		Groups:        service.NewGroupService(groupRepo),
	}
}

// NewEngine 构建 HTTP 引擎
func NewEngine(cfg *config.Config, db *gorm.DB, pages cache.PageCache, sentryEnabled bool) (*gin.Engine, *Services, error) {
	media := storage.NewLocalStorage(cfg.Media.Root, cfg.Media.URLPrefix)
	svc := NewServices(db, pages, media)

	tpl, err := web.Templates(media.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse templates: %w", err)
	}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	h := handler.NewHandler(svc.Posts, svc.Relationships, svc.Users, svc.Groups, tokens, cfg)

	engine := router.Setup(router.Options{
		Config:    cfg,
		Handler:   h,
		Tokens:    tokens,
		Users:     svc.Users,
		Templates: tpl,
		Sentry:    sentryEnabled,
	})
	return engine, svc, nil
}
