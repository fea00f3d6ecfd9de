package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/pkg/pagination"
)

// PostFilter 列表过滤条件，字段为 nil 表示不过滤
type PostFilter struct {
	GroupID    *uint
	AuthorID   *uint
	FollowerID *uint // 只看该用户关注的作者
}

// PostRepository 帖子仓储接口
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	// Update 覆盖 text/group/image，作者与发布时间不变
	Update(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id uint) (*model.Post, error)
	Count(ctx context.Context, filter PostFilter) (int64, error)
	// Page 按发布时间倒序分页，预加载作者与分组
	Page(ctx context.Context, filter PostFilter, rawPage string, perPage int) (*pagination.Page[*model.Post], error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).
		Model(post).
		Select("text", "group_id", "image").
		Updates(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*model.Post, error) {
	var p model.Post
	if err := r.db.WithContext(ctx).Preload("Author").Preload("Group").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) Count(ctx context.Context, filter PostFilter) (int64, error) {
	var cnt int64
	err := r.scoped(r.db.WithContext(ctx).Model(&model.Post{}), filter).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) Page(ctx context.Context, filter PostFilter, rawPage string, perPage int) (*pagination.Page[*model.Post], error) {
	total, err := r.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := pagination.NewPage[*model.Post](total, rawPage, perPage)
	if total == 0 {
		return page, nil
	}

	var items []*model.Post
	// 同一时刻批量插入的帖子按 id 倒序，保证稳定顺序
	err = r.scoped(r.db.WithContext(ctx), filter).
		Preload("Author").
		Preload("Group").
		Order("posts.created_at DESC").
		Order("posts.id DESC").
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	page.Items = items
	return page, nil
}

func (r *postRepository) scoped(tx *gorm.DB, filter PostFilter) *gorm.DB {
	if filter.GroupID != nil {
		tx = tx.Where("posts.group_id = ?", *filter.GroupID)
	}
	if filter.AuthorID != nil {
		tx = tx.Where("posts.author_id = ?", *filter.AuthorID)
	}
	if filter.FollowerID != nil {
		sub := r.db.Model(&model.Follow{}).Select("author_id").Where("user_id = ?", *filter.FollowerID)
		tx = tx.Where("posts.author_id IN (?)", sub)
	}
	return tx
}
