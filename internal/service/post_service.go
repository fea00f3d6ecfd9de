package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/d60-Lab/yatube/internal/cache"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/internal/storage"
	"github.com/d60-Lab/yatube/pkg/logger"
	"github.com/d60-Lab/yatube/pkg/pagination"
)

// PostPage 帖子列表的一页
type PostPage = pagination.Page[*model.Post]

// Upload 已读入内存并校验过的图片附件
type Upload struct {
	Filename string
	Data     []byte
}

// ProfileView 作者主页
type ProfileView struct {
	Author    *model.User
	Page      *PostPage
	PostCount int64
}

// PostDetail 帖子详情及评论（按插入顺序）
type PostDetail struct {
	Post            *model.Post
	Comments        []*model.Comment
	AuthorPostCount int64
}

// PostService 帖子、列表与评论
type PostService interface {
	Index(ctx context.Context, rawPage string) (*PostPage, error)
	GroupPosts(ctx context.Context, slug, rawPage string) (*model.Group, *PostPage, error)
	Profile(ctx context.Context, username, rawPage string) (*ProfileView, error)
	Feed(ctx context.Context, userID uint, rawPage string) (*PostPage, error)
	Get(ctx context.Context, id uint) (*model.Post, error)
	Detail(ctx context.Context, id uint) (*PostDetail, error)
	Create(ctx context.Context, author *model.User, draft *model.Post, image *Upload) (*model.Post, error)
	Update(ctx context.Context, editor *model.User, post *model.Post, image *Upload) error
	AddComment(ctx context.Context, author *model.User, postID uint, comment *model.Comment) error
}

type postService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	groups   repository.GroupRepository
	users    repository.UserRepository
	media    storage.Storage
	pages    cache.PageCache
	perPage  int
}

func NewPostService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	groups repository.GroupRepository,
	users repository.UserRepository,
	media storage.Storage,
	pages cache.PageCache,
) PostService {
	if pages == nil {
		pages = cache.NopPageCache{}
	}
	return &postService{
		posts:    posts,
		comments: comments,
		groups:   groups,
		users:    users,
		media:    media,
		pages:    pages,
		perPage:  pagination.PerPage,
	}
}

func (s *postService) Index(ctx context.Context, rawPage string) (*PostPage, error) {
	key := "index:" + pagination.Normalize(rawPage)
	data, err := s.pages.Fetch(ctx, key, func(ctx context.Context) ([]byte, error) {
		page, err := s.posts.Page(ctx, repository.PostFilter{}, rawPage, s.perPage)
		if err != nil {
			return nil, err
		}
		return json.Marshal(page)
	})
	if err != nil {
		return nil, err
	}
	var page PostPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("decode cached index page: %w", err)
	}
	return &page, nil
}

func (s *postService) GroupPosts(ctx context.Context, slug, rawPage string) (*model.Group, *PostPage, error) {
	g, err := s.groups.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, notFound(err, ErrGroupNotFound)
	}
	page, err := s.posts.Page(ctx, repository.PostFilter{GroupID: &g.ID}, rawPage, s.perPage)
	if err != nil {
		return nil, nil, err
	}
	return g, page, nil
}

func (s *postService) Profile(ctx context.Context, username, rawPage string) (*ProfileView, error) {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	page, err := s.posts.Page(ctx, repository.PostFilter{AuthorID: &author.ID}, rawPage, s.perPage)
	if err != nil {
		return nil, err
	}
	return &ProfileView{Author: author, Page: page, PostCount: page.Count}, nil
}

func (s *postService) Feed(ctx context.Context, userID uint, rawPage string) (*PostPage, error) {
	return s.posts.Page(ctx, repository.PostFilter{FollowerID: &userID}, rawPage, s.perPage)
}

func (s *postService) Get(ctx context.Context, id uint) (*model.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrPostNotFound)
	}
	return p, nil
}

func (s *postService) Detail(ctx context.Context, id uint) (*PostDetail, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPost(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	cnt, err := s.posts.Count(ctx, repository.PostFilter{AuthorID: &p.AuthorID})
	if err != nil {
		return nil, err
	}
	return &PostDetail{Post: p, Comments: comments, AuthorPostCount: cnt}, nil
}

func (s *postService) Create(ctx context.Context, author *model.User, draft *model.Post, image *Upload) (*model.Post, error) {
	post := &model.Post{
		Text:     draft.Text,
		GroupID:  draft.GroupID,
		Group:    draft.Group,
		AuthorID: author.ID,
		Author:   *author,
	}
	if image != nil {
		name, err := s.media.Save(ctx, "posts", image.Filename, image.Data)
		if err != nil {
			return nil, err
		}
		post.Image = name
	}
	if err := s.posts.Create(ctx, post); err != nil {
		s.discardImage(ctx, post.Image)
		return nil, err
	}
	s.invalidate(ctx)
	return post, nil
}

func (s *postService) Update(ctx context.Context, editor *model.User, post *model.Post, image *Upload) error {
	if post.AuthorID != editor.ID {
		return ErrNotAuthor
	}
	oldImage := post.Image
	if image != nil {
		name, err := s.media.Save(ctx, "posts", image.Filename, image.Data)
		if err != nil {
			return err
		}
		post.Image = name
	}
	if err := s.posts.Update(ctx, post); err != nil {
		if image != nil {
			s.discardImage(ctx, post.Image)
			post.Image = oldImage
		}
		return err
	}
	if image != nil && oldImage != "" {
		if err := s.media.Delete(ctx, oldImage); err != nil {
			logger.Warn("delete replaced image failed", zap.String("image", oldImage), zap.Error(err))
		}
	}
	s.invalidate(ctx)
	return nil
}

func (s *postService) AddComment(ctx context.Context, author *model.User, postID uint, comment *model.Comment) error {
	if _, err := s.Get(ctx, postID); err != nil {
		return err
	}
	comment.ID = 0
	comment.PostID = postID
	comment.AuthorID = author.ID
	comment.Author = *author
	return s.comments.Create(ctx, comment)
}

// discardImage 删除未能落库的新图片
func (s *postService) discardImage(ctx context.Context, name string) {
	if name == "" {
		return
	}
	if err := s.media.Delete(ctx, name); err != nil {
		logger.Warn("delete orphaned image failed", zap.String("image", name), zap.Error(err))
	}
}

func (s *postService) invalidate(ctx context.Context) {
	if err := s.pages.Invalidate(ctx); err != nil {
		logger.Warn("invalidate index page cache failed", zap.Error(err))
	}
}
