package cache

import (
	"context"
	"time"

	"CleanHome/storage/redis"
)

// SetNX 分布式锁，家庭树的读改写在锁内进行
const lockPrefix = "lock"

func TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	fullKey := redis.Key(lockPrefix, key)

	result, err := redis.Client().SetNX(ctx, fullKey, 1, ttl).Result()
	if err != nil {
		return false, err
	}
	return result, nil
}

func Unlock(ctx context.Context, key string) error {
	fullKey := redis.Key(lockPrefix, key)
	return redis.Client().Del(ctx, fullKey).Err()
}
