package cache

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"CleanHome/storage/redis"
)

// 家庭共享树：family:<CODE> 下的 meta 与四个子树
// 子树是 hash（field 即对象 ID），变更后向家庭频道发布事件，
// 其它成员的连接收到事件后拉取快照整体替换本地状态
const (
	familyMetaPrefix  = "family:meta"
	familyTreePrefix  = "family:tree"
	familyEventPrefix = "family:events"
)

// 子树名，hash key 的最后一段
const (
	SubtreeMembers     = "members"
	SubtreeHistory     = "history"
	SubtreeAssignments = "assignments"
	SubtreeComments    = "comments"
)

// FamilyExists 家庭码是否已被占用
func FamilyExists(ctx context.Context, code string) (bool, error) {
	key := redis.Key(familyMetaPrefix, code)
	result, err := redis.Client().Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check family existence: %w", err)
	}
	return result > 0, nil
}

// ClaimFamilyCode 原子占用家庭码，值为创建时间
// 返回 false 表示码已被占用，调用方换码重试
func ClaimFamilyCode(ctx context.Context, code, createdAt string) (bool, error) {
	key := redis.Key(familyMetaPrefix, code)
	ok, err := redis.Client().SetNX(ctx, key, createdAt, 0).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim family code: %w", err)
	}
	return ok, nil
}

// FamilyCreatedAt 家庭创建时间，不存在时返回空串
func FamilyCreatedAt(ctx context.Context, code string) (string, error) {
	key := redis.Key(familyMetaPrefix, code)
	val, err := redis.Client().Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get family meta: %w", err)
	}
	return val, nil
}

// PutSubtreeEntry 写入子树条目
func PutSubtreeEntry(ctx context.Context, code, subtree, id string, data []byte) error {
	key := redis.Key(familyTreePrefix, code, subtree)
	if err := redis.Client().HSet(ctx, key, id, data).Err(); err != nil {
		return fmt.Errorf("failed to put family %s entry: %w", subtree, err)
	}
	return nil
}

// RemoveSubtreeEntry 删除子树条目，缺席时不报错
func RemoveSubtreeEntry(ctx context.Context, code, subtree, id string) error {
	key := redis.Key(familyTreePrefix, code, subtree)
	if err := redis.Client().HDel(ctx, key, id).Err(); err != nil {
		return fmt.Errorf("failed to remove family %s entry: %w", subtree, err)
	}
	return nil
}

// GetSubtree 整个子树，field -> json string
func GetSubtree(ctx context.Context, code, subtree string) (map[string]string, error) {
	key := redis.Key(familyTreePrefix, code, subtree)
	fields, err := redis.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load family %s: %w", subtree, err)
	}
	return fields, nil
}

// PublishFamilyEvent 向家庭频道广播变更事件
func PublishFamilyEvent(ctx context.Context, code string, payload []byte) error {
	channel := redis.Key(familyEventPrefix, code)
	if err := redis.Client().Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish family event: %w", err)
	}
	return nil
}

// SubscribeFamily 订阅家庭频道，调用方负责 Close
func SubscribeFamily(ctx context.Context, code string) *goredis.PubSub {
	channel := redis.Key(familyEventPrefix, code)
	return redis.Client().Subscribe(ctx, channel)
}
