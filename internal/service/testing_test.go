package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/d60-Lab/yatube/internal/cache"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/internal/storage"
)

var smallGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x02, 0x00,
	0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xFF, 0xFF, 0xFF, 0x21, 0xF9, 0x04, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x2C, 0x00, 0x00, 0x00, 0x00,
	0x02, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x0C,
	0x0A, 0x00, 0x3B,
}

type fixture struct {
	db     *gorm.DB
	mr     *miniredis.Miniredis
	pages  *cache.RedisPageCache
	media  *storage.LocalStorage
	posts  PostService
	rels   RelationshipService
	users  UserService
	groups GroupService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true, Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	pages := cache.NewRedisPageCache(client, "test:page", 20*time.Second)
	media := storage.NewLocalStorage(t.TempDir(), "/media/")

	postRepo := repository.NewPostRepository(db)
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	return &fixture{
		db:     db,
		mr:     mr,
		pages:  pages,
		media:  media,
		posts:  NewPostService(postRepo, repository.NewCommentRepository(db), groupRepo, userRepo, media, pages),
		rels:   NewRelationshipService(repository.NewFollowRepository(db), userRepo),
		users:  NewUserService(userRepo),
		groups: NewGroupService(groupRepo),
	}
}

func (f *fixture) user(t *testing.T, username string) *model.User {
	t.Helper()
	u, err := f.users.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return u
}

func (f *fixture) post(t *testing.T, author *model.User, text string) *model.Post {
	t.Helper()
	p, err := f.posts.Create(context.Background(), author, &model.Post{Text: text}, nil)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	return p
}
