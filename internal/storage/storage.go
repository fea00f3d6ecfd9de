package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// ErrNotImage 上传内容无法解码为图片
var ErrNotImage = errors.New("upload a valid image")

// Storage 附件存储
type Storage interface {
	// Save 写入数据并返回相对路径（形如 posts/20250101-uuid-name.png）
	Save(ctx context.Context, dir, filename string, data []byte) (string, error)
	Delete(ctx context.Context, name string) error
	URL(name string) string
}

// LocalStorage 本地文件系统存储，由 /media/ 静态路由对外提供
type LocalStorage struct {
	root      string
	urlPrefix string
}

func NewLocalStorage(root, urlPrefix string) *LocalStorage {
	if urlPrefix == "" {
		urlPrefix = "/media/"
	}
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &LocalStorage{root: root, urlPrefix: urlPrefix}
}

func (s *LocalStorage) Root() string { return s.root }

func (s *LocalStorage) Save(ctx context.Context, dir, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := path.Join(dir, GenerateUniqueFilename(filename))
	full := filepath.Join(s.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return name, nil
}

func (s *LocalStorage) Delete(_ context.Context, name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(path.Clean("/" + name))))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *LocalStorage) URL(name string) string {
	if name == "" {
		return ""
	}
	return s.urlPrefix + name
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	base := filepath.Base(filename)
	safe := unsafeChars.ReplaceAllString(base, "_")
	if safe == "" || safe == "." || safe == "_" {
		safe = "upload"
	}
	return safe
}

// GenerateUniqueFilename 生成 日期-uuid-原文件名 形式的唯一文件名
func GenerateUniqueFilename(originalFilename string) string {
	return fmt.Sprintf("%s-%s-%s", time.Now().Format("20060102"), uuid.NewString(), sanitizeFilename(originalFilename))
}

// ValidateImage 确认数据是可解码的图片（gif/jpeg/png/bmp/tiff）
func ValidateImage(data []byte) error {
	if len(data) == 0 {
		return ErrNotImage
	}
	if _, err := imaging.Decode(bytes.NewReader(data)); err != nil {
		return ErrNotImage
	}
	return nil
}
