package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"CleanHome/storage/redis"
)

// 日键完成集合："daily:<day>" 的 Set，镜像内存历史里当天的任务 ID 集合
// 作为快速只读视图服务今日进度与提醒过滤，权威数据在 PostgreSQL
const (
	dailySetPrefix = "daily"

	// 只有今天和昨天会被在线查询，给足回看余量即可
	dailySetTTL = 72 * time.Hour
)

// AddDailyCompletion 把任务加入某天的完成集合
func AddDailyCompletion(ctx context.Context, day string, taskID int64) error {
	key := redis.Key(dailySetPrefix, day)
	pipe := redis.Client().Pipeline()
	pipe.SAdd(ctx, key, taskID)
	pipe.Expire(ctx, key, dailySetTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add daily completion: %w", err)
	}
	return nil
}

// RemoveDailyCompletion 把任务从某天的完成集合移除（撤销完成）
func RemoveDailyCompletion(ctx context.Context, day string, taskID int64) error {
	key := redis.Key(dailySetPrefix, day)
	if err := redis.Client().SRem(ctx, key, taskID).Err(); err != nil {
		return fmt.Errorf("failed to remove daily completion: %w", err)
	}
	return nil
}

// DailyCompletions 某天完成集合里的任务 ID
func DailyCompletions(ctx context.Context, day string) (map[int64]struct{}, error) {
	key := redis.Key(dailySetPrefix, day)
	members, err := redis.Client().SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load daily completions: %w", err)
	}

	set := make(map[int64]struct{}, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		set[id] = struct{}{}
	}
	return set, nil
}
