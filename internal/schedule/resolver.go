package schedule

import (
	"fmt"
	"sort"
	"time"

	"CleanHome/internal/model"
	pkgerrors "CleanHome/pkg/errors"
)

// 复发解析：给定任务频率和日历日，判断当天是否到期
// 全部基于本地日历，周以周一开始

// IsDue 判断任务在 date 当天是否到期
// 未知频率返回 UNSUPPORTED_FREQUENCY，而不是静默地永不排期，
// 这样目录数据录入错误能第一时间暴露
func IsDue(task model.Task, date time.Time) (bool, error) {
	day := date.Day()
	month := date.Month()

	switch task.Frequency {
	case model.FrequencyDaily:
		return true, nil
	case model.FrequencyWeekly:
		return date.Weekday() == time.Monday, nil
	case model.FrequencyMonthly:
		return day == 1, nil
	case model.FrequencyQuarterly:
		return day == 1 && (month == time.January || month == time.April ||
			month == time.July || month == time.October), nil
	case model.FrequencySeasonal:
		return day == 1 && (month == time.March || month == time.June ||
			month == time.September || month == time.December), nil
	case model.FrequencyYearly:
		return day == 1 && month == time.January, nil
	default:
		return false, fmt.Errorf("task %d: %w", task.ID, pkgerrors.UnsupportedFrequency)
	}
}

// Expand 把目录在 [from, to]（含端点）内展开为具体的排期实例
// 结果按日期升序、同日期内按任务 ID 升序；纯函数，可重复调用结果一致
func Expand(tasks []model.Task, from, to time.Time) ([]model.ScheduledInstance, error) {
	from = truncateToDay(from)
	to = truncateToDay(to)

	if to.Before(from) {
		return nil, pkgerrors.InvalidDateRange
	}

	instances := make([]model.ScheduledInstance, 0)

	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		for _, task := range tasks {
			due, err := IsDue(task, date)
			if err != nil {
				return nil, err
			}
			if !due {
				continue
			}

			instances = append(instances, model.ScheduledInstance{
				TaskID:           task.ID,
				TaskName:         task.Name,
				Date:             date.Format(model.DayFormat),
				Zone:             task.Zone,
				Frequency:        task.Frequency,
				EstimatedMinutes: task.EstimatedMinutes,
			})
		}
	}

	// 目录顺序不做假设，排序兜底保证 (date, task_id) 升序
	sort.Slice(instances, func(i, j int) bool {
		if instances[i].Date != instances[j].Date {
			return instances[i].Date < instances[j].Date
		}
		return instances[i].TaskID < instances[j].TaskID
	})

	return instances, nil
}

// DueOn 返回 date 当天到期的全部任务实例
func DueOn(tasks []model.Task, date time.Time) ([]model.ScheduledInstance, error) {
	return Expand(tasks, date, date)
}

func truncateToDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
