package cache

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"CleanHome/storage/redis"
)

// 用户偏好：深色模式、提醒开关
// 按 owner 维度隔离，未登录的单机用户固定用 "local"
const (
	prefDarkModePrefix      = "pref:dark-mode"
	prefNotificationsPrefix = "pref:notifications"

	// LocalOwner 未加入家庭时的偏好归属
	LocalOwner = "local"
)

func getBoolPref(ctx context.Context, prefix, owner string) (bool, error) {
	key := redis.Key(prefix, owner)
	val, err := redis.Client().Get(ctx, key).Result()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get preference: %w", err)
	}
	return val == "1", nil
}

func setBoolPref(ctx context.Context, prefix, owner string, enabled bool) error {
	key := redis.Key(prefix, owner)
	val := "0"
	if enabled {
		val = "1"
	}
	if err := redis.Client().Set(ctx, key, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}
	return nil
}

// GetDarkMode 深色模式开关，缺省 false
func GetDarkMode(ctx context.Context, owner string) (bool, error) {
	return getBoolPref(ctx, prefDarkModePrefix, owner)
}

// SetDarkMode 写入深色模式开关
func SetDarkMode(ctx context.Context, owner string, enabled bool) error {
	return setBoolPref(ctx, prefDarkModePrefix, owner, enabled)
}

// GetNotificationsEnabled 提醒开关，缺省 false（显式开启后才发提醒）
func GetNotificationsEnabled(ctx context.Context, owner string) (bool, error) {
	return getBoolPref(ctx, prefNotificationsPrefix, owner)
}

// SetNotificationsEnabled 写入提醒开关
func SetNotificationsEnabled(ctx context.Context, owner string, enabled bool) error {
	return setBoolPref(ctx, prefNotificationsPrefix, owner, enabled)
}
