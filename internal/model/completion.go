package model

import "time"

// CompletionEvent 完成事件，append-only 日志的持久化行
// 不变量：同一 (TaskID, Day) 至多一条有效记录，由唯一索引兜底
type CompletionEvent struct {
	ID          int64     `gorm:"primaryKey" json:"id"` // snowflake
	TaskID      int64     `gorm:"not null;uniqueIndex:idx_completion_events_task_day" json:"task_id"`
	Day         string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_completion_events_task_day;index:idx_completion_events_day" json:"day"`
	CompletedAt time.Time `gorm:"type:timestamptz;not null" json:"completed_at"`
	MemberID    string    `gorm:"type:varchar(64);not null;default:''" json:"member_id,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
}

// TableName 指定表名
func (CompletionEvent) TableName() string {
	return "completion_events"
}
