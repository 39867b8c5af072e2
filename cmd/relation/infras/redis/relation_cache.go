package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"Murmur.com/cmd/model"
	"github.com/redis/go-redis/v9"
)

// Redis key templates
const (
	// 关注计数缓存 Key：relation:counts:{user_id}
	// 存储该用户的粉丝数(follower_count)和关注数(following_count)
	FollowCountsKeyTemplate = "relation:counts:%d"
)

// RelationCacheManager 关注计数缓存管理器
// cache-aside: 读时回填, 写路径(关注/取关/注销)负责失效
type RelationCacheManager struct {
	client     redis.Cmdable
	defaultTTL time.Duration
}

func NewRelationCacheManager(client redis.Cmdable) *RelationCacheManager {
	return &RelationCacheManager{
		client:     client,
		defaultTTL: 10 * time.Minute,
	}
}

// GetFollowCounts 读取计数缓存, 未命中返回(nil, nil)
func (rcm *RelationCacheManager) GetFollowCounts(ctx context.Context, userID int64) (*model.FollowCounts, error) {
	key := fmt.Sprintf(FollowCountsKeyTemplate, userID)
	val, err := rcm.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get follow counts cache: %w", err)
	}

	counts := new(model.FollowCounts)
	if err := json.Unmarshal([]byte(val), counts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal follow counts cache: %w", err)
	}
	return counts, nil
}

// SetFollowCounts 回填计数缓存
func (rcm *RelationCacheManager) SetFollowCounts(ctx context.Context, userID int64, counts *model.FollowCounts) error {
	key := fmt.Sprintf(FollowCountsKeyTemplate, userID)
	b, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("failed to marshal follow counts: %w", err)
	}
	return rcm.client.Set(ctx, key, b, rcm.defaultTTL).Err()
}

// InvalidateFollowCounts 关注关系变化后使相关用户的计数缓存失效
func (rcm *RelationCacheManager) InvalidateFollowCounts(ctx context.Context, userIDs ...int64) error {
	if len(userIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, fmt.Sprintf(FollowCountsKeyTemplate, id))
	}
	if err := rcm.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate follow counts cache: %w", err)
	}
	return nil
}
