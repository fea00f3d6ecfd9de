// Package response 统一的页面/JSON 输出。
//
// 页面处理器默认渲染 HTML 模板；请求头 Accept 为 application/json 时，
// 同一份上下文以 Response 信封输出。
package response

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/yatube/pkg/logger"
)

// UserKey gin.Context 中当前登录用户的键
const UserKey = "yatube.current_user"

// Response JSON 信封
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: "ok", Data: data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Message: msg})
}

func InternalError(c *gin.Context, err error) {
	report(c, err)
	c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Message: "internal server error"})
}

// WantsJSON 客户端是否要求 JSON
func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

// Render 渲染模板 name；JSON 客户端得到 data 本身
func Render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if WantsJSON(c) {
		c.JSON(code, Response{Code: jsonCode(code), Message: http.StatusText(code), Data: data})
		return
	}
	if u, ok := c.Get(UserKey); ok {
		data["user"] = u
	}
	data["request_path"] = c.Request.URL.Path
	c.HTML(code, name, data)
}

// Redirect 302 跳转
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// NotFound 404 页面
func NotFound(c *gin.Context) {
	Render(c, http.StatusNotFound, "core/404.html", gin.H{"path": c.Request.URL.Path})
	c.Abort()
}

// ServerError 记录错误并渲染 500 页面
func ServerError(c *gin.Context, err error) {
	report(c, err)
	Render(c, http.StatusInternalServerError, "core/500.html", nil)
	c.Abort()
}

func TooManyRequests(c *gin.Context) {
	Render(c, http.StatusTooManyRequests, "core/429.html", nil)
	c.Abort()
}

func report(c *gin.Context, err error) {
	logger.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	_ = c.Error(err)
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("path", c.FullPath())
			hub.CaptureException(err)
		})
	}
}

func jsonCode(status int) int {
	if status < http.StatusBadRequest {
		return 0
	}
	return status
}
