package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/pkg/response"
)

// Recovery 捕获 panic 并渲染 500 页面
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		response.ServerError(c, fmt.Errorf("panic: %v", recovered))
	})
}
