package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/api/middleware"
	"github.com/d60-Lab/yatube/internal/form"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/pkg/response"
)

const msgBadCredentials = "Please enter a correct username and password. Note that both fields may be case-sensitive."

type loginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Signup 注册并登录
// @Summary 注册
// @Tags 认证
// @Accept x-www-form-urlencoded
// @Produce html,json
// @Param username formData string true "用户名"
// @Param email formData string false "邮箱"
// @Param password formData string true "密码"
// @Success 302 "跳转到首页"
// @Failure 429 {object} response.Response
// @Router /auth/signup/ [post]
func (h *Handler) Signup(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		response.Render(c, http.StatusOK, "users/signup.html", gin.H{"form": emptyForm()})
		return
	}
	values, err := h.postValues(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	schema := form.SignupSchema()
	var in form.SignupInput
	fv := formView{Values: schema.Initial(values), Errors: schema.Bind(values, &in)}
	delete(fv.Values, "password")
	if fv.Errors.Valid() {
		u, err := h.userService.Register(c.Request.Context(), service.RegisterInput{
			Username: in.Username,
			Email:    in.Email,
			Password: in.Password,
		})
		switch {
		case err == nil:
			h.startSession(c, u, "/")
			return
		case errors.Is(err, service.ErrUsernameTaken):
			fv.Errors.Add("username", "A user with that username already exists.")
		default:
			h.fail(c, err)
			return
		}
	}
	response.Render(c, http.StatusOK, "users/signup.html", gin.H{"form": fv})
}

// Login 登录
// @Summary 登录
// @Tags 认证
// @Accept x-www-form-urlencoded
// @Produce html,json
// @Param username formData string true "用户名"
// @Param password formData string true "密码"
// @Param next query string false "登录后跳转的站内地址"
// @Success 302 "跳转到 next 或首页"
// @Failure 429 {object} response.Response
// @Router /auth/login/ [post]
func (h *Handler) Login(c *gin.Context) {
	next := c.Query("next")
	if v := c.PostForm("next"); v != "" {
		next = v
	}
	fv := emptyForm()
	if c.Request.Method != http.MethodPost {
		response.Render(c, http.StatusOK, "users/login.html", gin.H{"form": fv, "next": next})
		return
	}

	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		fv.Values["username"] = c.PostForm("username")
		if req.Username == "" {
			fv.Errors.Add("username", form.MsgRequired)
		}
		if req.Password == "" {
			fv.Errors.Add("password", form.MsgRequired)
		}
		response.Render(c, http.StatusOK, "users/login.html", gin.H{"form": fv, "next": next})
		return
	}
	u, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		h.startSession(c, u, safeNext(next))
	case errors.Is(err, service.ErrInvalidCredentials):
		fv.Values["username"] = req.Username
		fv.Errors.Add(form.NonField, msgBadCredentials)
		response.Render(c, http.StatusOK, "users/login.html", gin.H{"form": fv, "next": next})
	default:
		h.fail(c, err)
	}
}

// Logout 退出登录
// @Summary 退出
// @Tags 认证
// @Success 302 "跳转到首页"
// @Router /auth/logout/ [get]
func (h *Handler) Logout(c *gin.Context) {
	middleware.ClearSession(c, h.authCfg.CookieName)
	response.Redirect(c, "/")
}

func (h *Handler) startSession(c *gin.Context, u *model.User, next string) {
	token, _, err := h.tokens.Issue(u)
	if err != nil {
		h.fail(c, err)
		return
	}
	middleware.SetSession(c, h.authCfg.CookieName, token, int(h.tokens.TTL().Seconds()), h.authCfg.SecureCookie)
	response.Redirect(c, next)
}
