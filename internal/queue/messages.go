package queue

// TaskReminderMessage 次日到期任务的提醒消息
// 调度器在前一晚扫描目录后整批投放，worker 消费后推送通知
type TaskReminderMessage struct {
	MessageID    string  `json:"message_id"`
	Day          string  `json:"day"` // 提醒针对的日期 YYYY-MM-DD
	ScheduledAt  string  `json:"scheduled_at"`
	TaskIDs      []int64 `json:"task_ids"`
	DelaySeconds int     `json:"delay_seconds"`
}
