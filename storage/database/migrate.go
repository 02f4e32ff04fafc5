package database

import (
	"fmt"

	"CleanHome/internal/model"
)

// Migrate 自动迁移完成历史表
// 任务目录是编译期静态数据，不入库，只有事件日志需要持久化
func Migrate() error {
	if db == nil {
		return fmt.Errorf("database is not initialized")
	}

	if err := db.AutoMigrate(
		&model.CompletionEvent{},
	); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	return nil
}
