package schedule

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"CleanHome/config"
	"CleanHome/internal/cache"
	"CleanHome/internal/catalog"
	"CleanHome/internal/model"
	"CleanHome/internal/queue"
	"CleanHome/pkg/logger"
)

// 提醒调度：每晚在配置的提醒时刻扫描次日到期任务，整批投放一条延迟消息
// 按天做幂等标记，重启或多实例下同一天只投一次

// ScheduleTomorrowReminders 扫描明天到期的任务并投放提醒消息
func ScheduleTomorrowReminders(ctx context.Context, now time.Time) error {
	tomorrow := now.AddDate(0, 0, 1)
	day := model.DayOf(tomorrow)

	scheduled, err := cache.IsReminderScheduled(ctx, day)
	if err != nil {
		return fmt.Errorf("failed to check reminder schedule: %w", err)
	}
	if scheduled {
		logger.Logger.Info("Reminder already scheduled, skipping",
			zap.String("day", day),
		)
		return nil
	}

	instances, err := DueOn(catalog.Tasks, tomorrow)
	if err != nil {
		return fmt.Errorf("failed to resolve due tasks: %w", err)
	}

	if len(instances) == 0 {
		// 没有到期任务也记一笔标记，避免当晚反复扫描
		if err := cache.MarkReminderScheduled(ctx, day); err != nil {
			return fmt.Errorf("failed to mark reminder scheduled: %w", err)
		}
		logger.Logger.Info("No tasks due tomorrow, reminder skipped",
			zap.String("day", day),
		)
		return nil
	}

	taskIDs := make([]int64, 0, len(instances))
	for _, inst := range instances {
		taskIDs = append(taskIDs, inst.TaskID)
	}

	delay := delayUntilReminderTime(now)

	// 先标记后投放：投放失败时回滚标记，允许下一轮重试
	if err := cache.MarkReminderScheduled(ctx, day); err != nil {
		return fmt.Errorf("failed to mark reminder scheduled: %w", err)
	}

	msg := queue.TaskReminderMessage{
		Day:          day,
		ScheduledAt:  now.Format(time.RFC3339),
		TaskIDs:      taskIDs,
		DelaySeconds: int(delay.Seconds()),
	}

	if err := queue.PublishTaskReminder(ctx, msg); err != nil {
		if unmarkErr := cache.UnmarkReminderScheduled(ctx, day); unmarkErr != nil {
			logger.Logger.Warn("Failed to unmark reminder schedule after publish failure",
				zap.String("day", day),
				zap.Error(unmarkErr),
			)
		}
		return fmt.Errorf("failed to publish reminder: %w", err)
	}

	logger.Logger.Info("Scheduled tomorrow reminders",
		zap.String("day", day),
		zap.Int("task_count", len(taskIDs)),
		zap.Duration("delay", delay),
	)

	return nil
}

// delayUntilReminderTime 距离今天提醒时刻（默认 20:00 本地时区）的延迟
// 已过提醒时刻时立即投放
func delayUntilReminderTime(now time.Time) time.Duration {
	loc := now.Location()
	if tz := config.Cfg.ReminderTimezone; tz != "" {
		if parsed, err := time.LoadLocation(tz); err == nil {
			loc = parsed
		}
	}

	local := now.In(loc)
	hour, minute := 20, 0
	if _, err := fmt.Sscanf(config.Cfg.ReminderTime, "%d:%d", &hour, &minute); err != nil {
		hour, minute = 20, 0
	}

	target := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	delay := target.Sub(local)
	if delay < 0 {
		return 0
	}
	return delay
}
