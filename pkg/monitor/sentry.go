// Package monitor 错误上报（Sentry）。
package monitor

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/d60-Lab/yatube/config"
	"github.com/d60-Lab/yatube/pkg/logger"
)

// Init 初始化 Sentry；DSN 为空时返回 false，路由不挂载 sentrygin
func Init(cfg config.SentryConfig) (bool, error) {
	if cfg.DSN == "" {
		return false, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		AttachStacktrace: true,
	})
	if err != nil {
		return false, err
	}
	logger.Info("sentry enabled", zap.String("environment", cfg.Environment))
	return true, nil
}

// Flush 退出前等待事件发送
func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}
