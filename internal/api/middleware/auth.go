package middleware

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/yatube/internal/auth"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/pkg/logger"
	"github.com/d60-Lab/yatube/pkg/response"
)

// Authenticate 从会话 cookie 解析当前用户；匿名请求照常放行
func Authenticate(tokens *auth.TokenManager, users service.UserService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}
		id, err := tokens.Parse(raw)
		if err != nil {
			ClearSession(c, cookieName)
			c.Next()
			return
		}
		u, err := users.GetByID(c.Request.Context(), id)
		switch {
		case err == nil:
			c.Set(response.UserKey, u)
		case errors.Is(err, service.ErrUserNotFound):
			ClearSession(c, cookieName)
		default:
			logger.Warn("load session user failed", zap.Uint("user_id", id), zap.Error(err))
		}
		c.Next()
	}
}

// CurrentUser 当前登录用户，匿名时为 nil
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(response.UserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*model.User)
	return u
}

// LoginRequired 匿名访问跳转到登录页，next 为原始地址
func LoginRequired(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) != nil {
			c.Next()
			return
		}
		c.Redirect(http.StatusFound, loginURL+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
		c.Abort()
	}
}

// SetSession 写入会话 cookie
func SetSession(c *gin.Context, cookieName, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, token, maxAge, "/", "", secure, true)
}

// ClearSession 删除会话 cookie
func ClearSession(c *gin.Context, cookieName string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
}
