package dto

import "CleanHome/internal/model"

// CompleteTaskRequest 打勾请求
type CompleteTaskRequest struct {
	TaskID int64 `json:"task_id" vd:"$>0"`
}

// CompletionItem 完成事件视图
type CompletionItem struct {
	TaskID      int64  `json:"task_id"`
	Day         string `json:"day"`
	CompletedAt string `json:"completed_at"`
	MemberID    string `json:"member_id,omitempty"`
}

// TodayCompletions 当天完成集合，用于前端快速切换勾选态
type TodayCompletions struct {
	Day     string  `json:"day"`
	TaskIDs []int64 `json:"task_ids"`
}

// NewCompletionItem 从模型转换
func NewCompletionItem(e model.CompletionEvent) CompletionItem {
	return CompletionItem{
		TaskID:      e.TaskID,
		Day:         e.Day,
		CompletedAt: e.CompletedAt.Format("2006-01-02T15:04:05Z07:00"),
		MemberID:    e.MemberID,
	}
}
