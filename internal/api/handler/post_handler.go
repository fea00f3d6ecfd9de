package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/api/middleware"
	"github.com/d60-Lab/yatube/internal/form"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/pkg/response"
)

// Index 全站最新帖子
// @Summary 首页帖子列表
// @Tags 帖子
// @Produce html,json
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router / [get]
func (h *Handler) Index(c *gin.Context) {
	page, err := h.postService.Index(c.Request.Context(), c.Query("page"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Render(c, http.StatusOK, "posts/index.html", gin.H{"page_obj": page})
}

// GroupPosts 分组下的帖子
// @Summary 分组帖子列表
// @Tags 帖子
// @Produce html,json
// @Param slug path string true "分组 slug"
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 404 {object} response.Response
// @Router /group/{slug}/ [get]
func (h *Handler) GroupPosts(c *gin.Context) {
	group, page, err := h.postService.GroupPosts(c.Request.Context(), c.Param("slug"), c.Query("page"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Render(c, http.StatusOK, "posts/group_list.html", gin.H{"group": group, "page_obj": page})
}

// Profile 作者主页
// @Summary 作者主页
// @Tags 帖子
// @Produce html,json
// @Param username path string true "用户名"
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 404 {object} response.Response
// @Router /profile/{username}/ [get]
func (h *Handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	view, err := h.postService.Profile(ctx, c.Param("username"), c.Query("page"))
	if err != nil {
		h.fail(c, err)
		return
	}
	var viewerID uint
	if u := middleware.CurrentUser(c); u != nil {
		viewerID = u.ID
	}
	following, err := h.relService.IsFollowing(ctx, viewerID, view.Author.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	stats, err := h.relService.Stats(ctx, view.Author.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Render(c, http.StatusOK, "posts/profile.html", gin.H{
		"author":     view.Author,
		"page_obj":   view.Page,
		"post_count": view.PostCount,
		"following":  following,
		"stats":      stats,
	})
}

// PostDetail 帖子详情；POST 只回显评论表单，不保存
// @Summary 帖子详情
// @Tags 帖子
// @Produce html,json
// @Param post_id path int true "帖子ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 404 {object} response.Response
// @Router /posts/{post_id}/ [get]
func (h *Handler) PostDetail(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		response.NotFound(c)
		return
	}
	detail, err := h.postService.Detail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	fv := emptyForm()
	if c.Request.Method == http.MethodPost {
		values, err := h.postValues(c)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		schema := form.CommentSchema()
		var draft model.Comment
		fv.Errors = schema.Bind(values, &draft)
		fv.Values = schema.Initial(values)
	}
	response.Render(c, http.StatusOK, "posts/post_detail.html", gin.H{
		"post":              detail.Post,
		"comments":          detail.Comments,
		"author_post_count": detail.AuthorPostCount,
		"form":              fv,
	})
}

// PostCreate 新建帖子
// @Summary 新建帖子
// @Tags 帖子
// @Accept mpfd
// @Produce html,json
// @Param text formData string true "正文"
// @Param group formData int false "分组ID"
// @Param image formData file false "图片"
// @Success 302 "跳转到作者主页"
// @Router /create/ [post]
func (h *Handler) PostCreate(c *gin.Context) {
	ctx := c.Request.Context()
	groups, err := h.groupService.List(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	if c.Request.Method != http.MethodPost {
		h.renderPostForm(c, emptyForm(), groups, nil)
		return
	}

	values, err := h.postValues(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	schema := form.PostSchema(groups)
	var draft model.Post
	fv := formView{Values: schema.Initial(values), Errors: schema.Bind(values, &draft)}
	image, msg := h.readImage(c)
	if msg != "" {
		fv.Errors.Add("image", msg)
	}
	if !fv.Errors.Valid() {
		h.renderPostForm(c, fv, groups, nil)
		return
	}

	user := middleware.CurrentUser(c)
	if _, err := h.postService.Create(ctx, user, &draft, image); err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, fmt.Sprintf("/profile/%s/", user.Username))
}

// PostEdit 编辑帖子，仅作者可用
// @Summary 编辑帖子
// @Tags 帖子
// @Accept mpfd
// @Produce html,json
// @Param post_id path int true "帖子ID"
// @Param text formData string true "正文"
// @Param group formData int false "分组ID"
// @Param image formData file false "图片"
// @Success 302 "跳转到帖子详情"
// @Failure 404 {object} response.Response
// @Router /posts/{post_id}/edit/ [post]
func (h *Handler) PostEdit(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := postID(c)
	if !ok {
		response.NotFound(c)
		return
	}
	post, err := h.postService.Get(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	detailURL := fmt.Sprintf("/posts/%d/", post.ID)
	user := middleware.CurrentUser(c)
	if post.AuthorID != user.ID {
		response.Redirect(c, detailURL)
		return
	}
	groups, err := h.groupService.List(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	if c.Request.Method != http.MethodPost {
		fv := emptyForm()
		fv.Values["text"] = post.Text
		if post.GroupID != nil {
			fv.Values["group"] = strconv.FormatUint(uint64(*post.GroupID), 10)
		}
		h.renderPostForm(c, fv, groups, post)
		return
	}

	values, err := h.postValues(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	schema := form.PostSchema(groups)
	edited := *post
	fv := formView{Values: schema.Initial(values), Errors: schema.Bind(values, &edited)}
	image, msg := h.readImage(c)
	if msg != "" {
		fv.Errors.Add("image", msg)
	}
	if !fv.Errors.Valid() {
		h.renderPostForm(c, fv, groups, post)
		return
	}

	err = h.postService.Update(ctx, user, &edited, image)
	switch {
	case err == nil, errors.Is(err, service.ErrNotAuthor):
		response.Redirect(c, detailURL)
	default:
		h.fail(c, err)
	}
}

func (h *Handler) renderPostForm(c *gin.Context, fv formView, groups []*model.Group, post *model.Post) {
	data := gin.H{"form": fv, "groups": groups, "is_edit": post != nil}
	if post != nil {
		data["post"] = post
	}
	response.Render(c, http.StatusOK, "posts/post_create.html", data)
}

// AddComment 添加评论；文本为空时直接跳回详情
// @Summary 添加评论
// @Tags 帖子
// @Accept x-www-form-urlencoded
// @Param post_id path int true "帖子ID"
// @Param text formData string true "评论内容"
// @Success 302 "跳转到帖子详情"
// @Failure 404 {object} response.Response
// @Router /posts/{post_id}/comment/ [post]
func (h *Handler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := postID(c)
	if !ok {
		response.NotFound(c)
		return
	}
	values, err := h.postValues(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	var comment model.Comment
	if errs := form.CommentSchema().Bind(values, &comment); !errs.Valid() {
		// 帖子不存在时仍然是 404
		if _, err := h.postService.Get(ctx, id); err != nil {
			h.fail(c, err)
			return
		}
		response.Redirect(c, fmt.Sprintf("/posts/%d/", id))
		return
	}
	if err := h.postService.AddComment(ctx, middleware.CurrentUser(c), id, &comment); err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, fmt.Sprintf("/posts/%d/", id))
}
