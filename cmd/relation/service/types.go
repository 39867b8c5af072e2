package service

import (
	"context"

	"Murmur.com/cmd/model"
	"Murmur.com/cmd/relation/dal/db"
)

// EdgeStore 关注边存储契约, 由dal/db.FollowRepo实现
// 服务层只通过该接口访问存储, 测试时注入内存实现
type EdgeStore interface {
	Find(ctx context.Context, followerID, followeeID int64) (*model.Follow, error)
	Insert(ctx context.Context, follow *model.Follow) (*model.Follow, error)
	Delete(ctx context.Context, followerID, followeeID int64) (bool, error)
	DeleteAllInvolving(ctx context.Context, userID int64) error
	ScanFollowers(ctx context.Context, followeeID, afterID int64, limit int) ([]*model.Follow, bool, error)
	ScanFollowees(ctx context.Context, followerID, afterID int64, limit int) ([]*model.Follow, bool, error)
	CountFollowers(ctx context.Context, userID int64) (int64, error)
	CountFollowees(ctx context.Context, userID int64) (int64, error)
}

var _ EdgeStore = (*db.FollowRepo)(nil)

// CountCache 关注计数缓存契约, 由infras/redis.RelationCacheManager实现
type CountCache interface {
	GetFollowCounts(ctx context.Context, userID int64) (*model.FollowCounts, error)
	SetFollowCounts(ctx context.Context, userID int64, counts *model.FollowCounts) error
	InvalidateFollowCounts(ctx context.Context, userIDs ...int64) error
}

const (
	ActionFollow   = 1
	ActionUnfollow = 2
)

// RelationActionRequest 关注/取关操作请求
type RelationActionRequest struct {
	FollowerID int64 `json:"follower_id"`
	FolloweeID int64 `json:"followee_id"`
	ActionType int32 `json:"action_type"` // 1:关注 2:取消关注
}

// FollowListRequest 关注/粉丝列表请求
type FollowListRequest struct {
	UserID int64  `json:"user_id"`
	Limit  int32  `json:"limit"`
	Cursor string `json:"cursor"`
}
