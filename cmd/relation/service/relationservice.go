package service

import (
	"context"
	"fmt"
	"time"

	"Murmur.com/cmd/model"
	"Murmur.com/pkg/errno"
	"Murmur.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// RelationService 关注关系变更服务
// 对外的follow/unfollow都是幂等的: 重复关注由存储层唯一索引拒绝后吸收为成功,
// 不在应用层做先查后写
type RelationService struct {
	ctx      context.Context
	store    EdgeStore
	producer mq.FollowEventProducer // 可为nil, 事件发布是尽力而为
	cache    CountCache             // 可为nil
}

func NewRelationService(ctx context.Context, store EdgeStore, producer mq.FollowEventProducer, cache CountCache) *RelationService {
	return &RelationService{ctx: ctx, store: store, producer: producer, cache: cache}
}

func (s *RelationService) RelationAction(ctx context.Context, req *RelationActionRequest) error {
	if req.FollowerID == 0 || req.FolloweeID == 0 {
		return errno.ParamErr
	}
	switch req.ActionType {
	case ActionFollow:
		return s.Follow(ctx, req.FollowerID, req.FolloweeID)
	case ActionUnfollow:
		return s.Unfollow(ctx, req.FollowerID, req.FolloweeID)
	default:
		return errno.ParamErr.WithMessage(fmt.Sprintf("unknown action type %d", req.ActionType))
	}
}

// Follow 建立关注关系, 已关注时直接成功
func (s *RelationService) Follow(ctx context.Context, followerID, followeeID int64) error {
	_, err := s.store.Insert(ctx, &model.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	})
	if errors.Is(err, errno.DuplicateEdgeErr) {
		// 并发或重复关注, 边已存在即目标状态
		return nil
	}
	if err != nil {
		hlog.CtxErrorf(ctx, "follow insert failed: %v", err)
		return fmt.Errorf("failed to create follow edge: %w", errno.StorageErr)
	}

	s.afterChange(ctx, followerID, followeeID, "follow")
	return nil
}

// Unfollow 解除关注关系, 边不存在时同样成功
func (s *RelationService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	removed, err := s.store.Delete(ctx, followerID, followeeID)
	if err != nil {
		hlog.CtxErrorf(ctx, "unfollow delete failed: %v", err)
		return fmt.Errorf("failed to delete follow edge: %w", errno.StorageErr)
	}
	if removed {
		s.afterChange(ctx, followerID, followeeID, "unfollow")
	}
	return nil
}

// afterChange 状态确实变化后的旁路动作: 计数缓存失效、事件发布
// 两者失败都不影响本次操作的结果
func (s *RelationService) afterChange(ctx context.Context, followerID, followeeID int64, action string) {
	if s.cache != nil {
		if err := s.cache.InvalidateFollowCounts(ctx, followerID, followeeID); err != nil {
			hlog.CtxWarnf(ctx, "failed to invalidate follow counts: %v", err)
		}
	}
	if s.producer != nil {
		event := &mq.FollowEvent{
			FollowerID: followerID,
			FolloweeID: followeeID,
			ActionType: action,
			Timestamp:  time.Now().Unix(),
			EventID:    uuid.NewString(),
		}
		if err := s.producer.PublishFollowEvent(ctx, event); err != nil {
			hlog.CtxWarnf(ctx, "failed to publish follow event: %v", err)
		}
	}
}
