package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestIPRateLimiter(t *testing.T) {
	l := NewIPRateLimiter(1, 2)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("1.1.1.1"))
	assert.False(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("2.2.2.2"), "buckets are per ip")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("1.1.1.1"))
}

func TestIPRateLimiterEvictsIdleVisitors(t *testing.T) {
	l := NewIPRateLimiter(1, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("1.1.1.1")
	now = now.Add(limiterIdle + time.Second)
	l.Allow("2.2.2.2")
	assert.Len(t, l.visitors, 1)
}

func TestLoginRequired(t *testing.T) {
	r := gin.New()
	r.GET("/private/", LoginRequired("/auth/login/"), func(c *gin.Context) { c.String(http.StatusOK, "secret") })
	r.GET("/as-user/", func(c *gin.Context) {
		c.Set(response.UserKey, &model.User{ID: 1, Username: "leo"})
	}, LoginRequired("/auth/login/"), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUser(c).Username)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private/?a=1", nil))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login/?next=%2Fprivate%2F%3Fa%3D1", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/as-user/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "leo", w.Body.String())
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get(RequestIDHeader))
}
