package model

import "time"

// DayFormat 日历日的统一表示（本地时区）
const DayFormat = "2006-01-02"

// Frequency 任务复发频率枚举，封闭集合，不支持用户自定义
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"    // 每周一
	FrequencyMonthly   Frequency = "monthly"   // 每月 1 号
	FrequencyQuarterly Frequency = "quarterly" // 1/4/7/10 月 1 号
	FrequencySeasonal  Frequency = "seasonal"  // 3/6/9/12 月 1 号
	FrequencyYearly    Frequency = "yearly"    // 1 月 1 号
)

// Valid 判断频率是否属于封闭集合
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly,
		FrequencyQuarterly, FrequencySeasonal, FrequencyYearly:
		return true
	}
	return false
}

// Task 任务目录条目，构建期定义，运行期只读
type Task struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Zone             string    `json:"zone"`
	Frequency        Frequency `json:"frequency"`
	EstimatedMinutes int       `json:"estimated_minutes,omitempty"` // 0 表示未设置
}

// ScheduledInstance 某个日历日上到期的任务实例，派生数据，从不持久化
// 同一 (TaskID, Date) 至多出现一次
type ScheduledInstance struct {
	TaskID           int64     `json:"task_id"`
	TaskName         string    `json:"task_name"`
	Date             string    `json:"date"` // YYYY-MM-DD
	Zone             string    `json:"zone"`
	Frequency        Frequency `json:"frequency"`
	EstimatedMinutes int       `json:"estimated_minutes,omitempty"`
}

// DayOf 把时间戳折算到本地日历日
func DayOf(t time.Time) string {
	return t.Local().Format(DayFormat)
}
