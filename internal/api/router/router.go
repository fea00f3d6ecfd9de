package router

import (
	"html/template"
	"net/http"
	"strings"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/yatube/config"
	_ "github.com/d60-Lab/yatube/docs"
	"github.com/d60-Lab/yatube/internal/api/handler"
	"github.com/d60-Lab/yatube/internal/api/middleware"
	"github.com/d60-Lab/yatube/internal/auth"
	"github.com/d60-Lab/yatube/internal/service"
)

// Options 路由依赖
type Options struct {
	Config    *config.Config
	Handler   *handler.Handler
	Tokens    *auth.TokenManager
	Users     service.UserService
	Templates *template.Template
	Sentry    bool
}

// Setup 注册中间件与全部路由
func Setup(o Options) *gin.Engine {
	cfg := o.Config
	h := o.Handler

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.SetHTMLTemplate(o.Templates)

	r.Use(middleware.RequestLogger(), middleware.Recovery())
	if o.Sentry {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))

	mediaPrefix := "/" + strings.Trim(cfg.Media.URLPrefix, "/")
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{mediaPrefix + "/"})))
	r.Use(middleware.Authenticate(o.Tokens, o.Users, cfg.Auth.CookieName))

	r.StaticFS(mediaPrefix, http.Dir(cfg.Media.Root))
	r.GET("/health", h.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 公开页面
	r.GET("/", h.Index)
	r.GET("/group/:slug/", h.GroupPosts)
	r.GET("/profile/:username/", h.Profile)
	r.GET("/posts/:post_id/", h.PostDetail)
	r.POST("/posts/:post_id/", h.PostDetail)

	login := middleware.LoginRequired(cfg.Auth.LoginURL)
	r.GET("/create/", login, h.PostCreate)
	r.POST("/create/", login, h.PostCreate)
	r.GET("/posts/:post_id/edit/", login, h.PostEdit)
	r.POST("/posts/:post_id/edit/", login, h.PostEdit)
	r.POST("/posts/:post_id/comment/", login, h.AddComment)
	r.GET("/follow/", login, h.FollowIndex)
	r.GET("/profile/:username/follow/", login, h.ProfileFollow)
	r.POST("/profile/:username/follow/", login, h.ProfileFollow)
	r.GET("/profile/:username/unfollow/", login, h.ProfileUnfollow)
	r.POST("/profile/:username/unfollow/", login, h.ProfileUnfollow)

	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimit(middleware.NewIPRateLimiter(cfg.Auth.RateLimit, cfg.Auth.RateBurst)))
	{
		authGroup.GET("/signup/", h.Signup)
		authGroup.POST("/signup/", h.Signup)
		authGroup.GET("/login/", h.Login)
		authGroup.POST("/login/", h.Login)
		authGroup.GET("/logout/", h.Logout)
	}

	r.NoRoute(h.NotFound)
	return r
}
