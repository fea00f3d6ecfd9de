package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/api/middleware"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/pkg/response"
)

const followIndexURL = "/follow/"

// FollowIndex 关注作者的帖子
// @Summary 关注流
// @Tags 关系链
// @Produce html,json
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /follow/ [get]
func (h *Handler) FollowIndex(c *gin.Context) {
	user := middleware.CurrentUser(c)
	page, err := h.postService.Feed(c.Request.Context(), user.ID, c.Query("page"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Render(c, http.StatusOK, "posts/follow.html", gin.H{"page_obj": page})
}

// ProfileFollow 关注作者（幂等，关注自己为空操作）
// @Summary 关注作者
// @Tags 关系链
// @Param username path string true "作者用户名"
// @Success 302 "跳转到关注流"
// @Failure 404 {object} response.Response
// @Router /profile/{username}/follow/ [post]
func (h *Handler) ProfileFollow(c *gin.Context) {
	err := h.relService.Follow(c.Request.Context(), middleware.CurrentUser(c), c.Param("username"))
	if err != nil && !errors.Is(err, service.ErrFollowSelf) {
		h.fail(c, err)
		return
	}
	response.Redirect(c, followIndexURL)
}

// ProfileUnfollow 取消关注
// @Summary 取消关注
// @Tags 关系链
// @Param username path string true "作者用户名"
// @Success 302 "跳转到关注流"
// @Failure 404 {object} response.Response
// @Router /profile/{username}/unfollow/ [post]
func (h *Handler) ProfileUnfollow(c *gin.Context) {
	if err := h.relService.Unfollow(c.Request.Context(), middleware.CurrentUser(c), c.Param("username")); err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, followIndexURL)
}
