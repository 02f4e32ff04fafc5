package cache

import (
	"context"
	"fmt"
	"time"

	"CleanHome/storage/redis"
)

// 提醒投放标记：调度器按天幂等，重启或多实例下同一天只投一次
const (
	reminderScheduledPrefix = "reminder:scheduled"

	reminderScheduledTTL = 48 * time.Hour
)

// IsReminderScheduled 某天的提醒是否已投放到队列
func IsReminderScheduled(ctx context.Context, day string) (bool, error) {
	key := redis.Key(reminderScheduledPrefix, day)
	result, err := redis.Client().Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check reminder scheduled status: %w", err)
	}
	return result > 0, nil
}

// MarkReminderScheduled 标记某天的提醒已投放
func MarkReminderScheduled(ctx context.Context, day string) error {
	key := redis.Key(reminderScheduledPrefix, day)
	return redis.Client().Set(ctx, key, "1", reminderScheduledTTL).Err()
}

// UnmarkReminderScheduled 清除投放标记（投放失败时回滚，允许重试）
func UnmarkReminderScheduled(ctx context.Context, day string) error {
	key := redis.Key(reminderScheduledPrefix, day)
	return redis.Client().Del(ctx, key).Err()
}
