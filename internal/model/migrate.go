package model

import "gorm.io/gorm"

// All 返回需要迁移的全部模型，顺序满足外键依赖
func All() []interface{} {
	return []interface{}{&User{}, &Group{}, &Post{}, &Comment{}, &Follow{}}
}

// AutoMigrate 建表/补齐索引
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
