package main

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/yatube/config"
	"github.com/d60-Lab/yatube/pkg/database"
	"github.com/d60-Lab/yatube/pkg/logger"
)

// bootstrap 加载配置、初始化日志并连接数据库
func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	db, err := database.InitDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init db: %w", err)
	}
	return cfg, db, nil
}
