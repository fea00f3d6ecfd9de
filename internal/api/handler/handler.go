package handler

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/config"
	"github.com/d60-Lab/yatube/internal/auth"
	"github.com/d60-Lab/yatube/internal/form"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/internal/storage"
	"github.com/d60-Lab/yatube/pkg/response"
)

// Handler 页面处理器
type Handler struct {
	postService  service.PostService
	relService   service.RelationshipService
	userService  service.UserService
	groupService service.GroupService
	tokens       *auth.TokenManager
	authCfg      config.AuthConfig
	maxUpload    int64
}

func NewHandler(
	postService service.PostService,
	relService service.RelationshipService,
	userService service.UserService,
	groupService service.GroupService,
	tokens *auth.TokenManager,
	cfg *config.Config,
) *Handler {
	maxUpload := cfg.Media.MaxUpload
	if maxUpload <= 0 {
		maxUpload = 5 << 20
	}
	return &Handler{
		postService:  postService,
		relService:   relService,
		userService:  userService,
		groupService: groupService,
		tokens:       tokens,
		authCfg:      cfg.Auth,
		maxUpload:    maxUpload,
	}
}

// formView 表单回显：提交值与字段错误
type formView struct {
	Values map[string]string `json:"values"`
	Errors form.Errors       `json:"errors,omitempty"`
}

func emptyForm() formView {
	return formView{Values: map[string]string{}, Errors: form.Errors{}}
}

// Health 健康检查
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} response.Response
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}

// NotFound 未匹配路由
func (h *Handler) NotFound(c *gin.Context) {
	response.NotFound(c)
}

// fail 把服务层错误映射为页面结果
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrGroupNotFound),
		errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c)
	default:
		response.ServerError(c, err)
	}
}

// postID 解析路径中的帖子 ID；非法值按不存在处理
func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// postValues 解析 urlencoded 或 multipart 请求体
func (h *Handler) postValues(c *gin.Context) (url.Values, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+1<<20)
	err := c.Request.ParseMultipartForm(h.maxUpload)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	return c.Request.PostForm, nil
}

// readImage 读取可选的 image 文件字段；无文件时返回 nil
func (h *Handler) readImage(c *gin.Context) (*service.Upload, string) {
	if c.Request.MultipartForm == nil {
		return nil, ""
	}
	files := c.Request.MultipartForm.File["image"]
	if len(files) == 0 || files[0].Filename == "" {
		return nil, ""
	}
	fh := files[0]
	if fh.Size > h.maxUpload {
		return nil, "The uploaded file is too large."
	}
	f, err := fh.Open()
	if err != nil {
		return nil, form.MsgInvalidImage
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, h.maxUpload+1))
	if err != nil || int64(len(data)) > h.maxUpload {
		return nil, form.MsgInvalidImage
	}
	if err := storage.ValidateImage(data); err != nil {
		return nil, form.MsgInvalidImage
	}
	return &service.Upload{Filename: fh.Filename, Data: data}, ""
}

// safeNext 只接受站内路径
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}
