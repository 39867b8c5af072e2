package service

import (
	"context"
	"fmt"

	"Murmur.com/cmd/model"
	"Murmur.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// FollowCountService 关注计数服务, redis缓存走cache-aside
type FollowCountService struct {
	ctx   context.Context
	store EdgeStore
	cache CountCache // 可为nil, 退化为直查存储
}

func NewFollowCountService(ctx context.Context, store EdgeStore, cache CountCache) *FollowCountService {
	return &FollowCountService{ctx: ctx, store: store, cache: cache}
}

// FollowCounts 获取用户的粉丝数与关注数
func (s *FollowCountService) FollowCounts(ctx context.Context, userID int64) (*model.FollowCounts, error) {
	if userID == 0 {
		return nil, errno.ParamErr
	}

	if s.cache != nil {
		counts, err := s.cache.GetFollowCounts(ctx, userID)
		if err != nil {
			hlog.CtxWarnf(ctx, "follow counts cache read failed: %v", err)
		} else if counts != nil {
			return counts, nil
		}
	}

	followerCount, err := s.store.CountFollowers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count followers: %w", errno.StorageErr)
	}
	followingCount, err := s.store.CountFollowees(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count followees: %w", errno.StorageErr)
	}

	counts := &model.FollowCounts{
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
	}
	if s.cache != nil {
		if err := s.cache.SetFollowCounts(ctx, userID, counts); err != nil {
			hlog.CtxWarnf(ctx, "follow counts cache write failed: %v", err)
		}
	}
	return counts, nil
}
