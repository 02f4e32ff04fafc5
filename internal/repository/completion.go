package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"CleanHome/internal/model"
)

// CompletionRepository 完成事件的持久化仓库
type CompletionRepository struct {
	db *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

// Upsert 写入完成事件，(task_id, day) 冲突时更新时间戳，last-write-wins
func (r *CompletionRepository) Upsert(ctx context.Context, event *model.CompletionEvent) error {
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "task_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed_at", "member_id"}),
	}).Create(event).Error; err != nil {
		return fmt.Errorf("upsert completion event: %w", err)
	}
	return nil
}

// DeleteByTaskAndDay 删除某任务某天的记录，缺席时不报错
func (r *CompletionRepository) DeleteByTaskAndDay(ctx context.Context, taskID int64, day string) error {
	if err := r.db.WithContext(ctx).
		Where("task_id = ? AND day = ?", taskID, day).
		Delete(&model.CompletionEvent{}).Error; err != nil {
		return fmt.Errorf("delete completion event: %w", err)
	}
	return nil
}

// ListAll 全量加载，启动 Replay 用
func (r *CompletionRepository) ListAll(ctx context.Context) ([]model.CompletionEvent, error) {
	var events []model.CompletionEvent
	if err := r.db.WithContext(ctx).
		Order("day, task_id").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list completion events: %w", err)
	}
	return events, nil
}

// ListInRange 范围查询，[fromDay, toDay] 含端点
func (r *CompletionRepository) ListInRange(ctx context.Context, fromDay, toDay string) ([]model.CompletionEvent, error) {
	var events []model.CompletionEvent
	if err := r.db.WithContext(ctx).
		Where("day >= ? AND day <= ?", fromDay, toDay).
		Order("day, task_id").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list completion events in range: %w", err)
	}
	return events, nil
}

// ReplaceAll 以远端快照整体替换本地持久化状态（家庭同步的送达语义）
func (r *CompletionRepository) ReplaceAll(ctx context.Context, events []model.CompletionEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.CompletionEvent{}).Error; err != nil {
			return fmt.Errorf("clear completion events: %w", err)
		}
		if len(events) == 0 {
			return nil
		}
		if err := tx.Create(&events).Error; err != nil {
			return fmt.Errorf("insert completion events: %w", err)
		}
		return nil
	})
}
