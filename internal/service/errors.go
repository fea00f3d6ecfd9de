package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrFollowSelf         = errors.New("cannot follow self")
	ErrPostNotFound       = errors.New("post not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotAuthor          = errors.New("only the author can edit the post")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("a user with that username already exists")
	ErrSlugTaken          = errors.New("a group with that slug already exists")
	ErrInvalidSlug        = errors.New("slug may contain only letters, numbers, underscores or hyphens")
)

// notFound 把 gorm.ErrRecordNotFound 转成领域错误，其他错误原样返回
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
