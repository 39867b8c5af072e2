package service

import (
	"context"
	"fmt"

	"Murmur.com/cmd/model"
	"Murmur.com/pkg/constants"
	"Murmur.com/pkg/cursor"
	"Murmur.com/pkg/errno"
)

// FollowerListService 粉丝列表查询服务
type FollowerListService struct {
	ctx   context.Context
	store EdgeStore
	codec *cursor.Codec
}

func NewFollowerListService(ctx context.Context, store EdgeStore, codec *cursor.Codec) *FollowerListService {
	return &FollowerListService{ctx: ctx, store: store, codec: codec}
}

// FollowerList 分页返回关注req.UserID的用户ID
func (s *FollowerListService) FollowerList(ctx context.Context, req *FollowListRequest) (*model.Page, error) {
	if req.UserID == 0 {
		return nil, errno.ParamErr
	}
	limit := clampLimit(req.Limit)

	afterID := int64(0)
	if req.Cursor != "" {
		pos, err := s.codec.Decode(req.Cursor, cursor.KindFollowers, req.UserID)
		if err != nil {
			return nil, err
		}
		afterID = pos.LastID
	}

	edges, hasMore, err := s.store.ScanFollowers(ctx, req.UserID, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get follower list: %w", errno.StorageErr)
	}

	page := &model.Page{Items: make([]int64, 0, len(edges))}
	for _, e := range edges {
		page.Items = append(page.Items, e.FollowerID)
	}

	if hasMore {
		token, err := s.codec.Encode(&cursor.Position{
			Kind:   cursor.KindFollowers,
			Anchor: req.UserID,
			LastID: edges[len(edges)-1].ID,
		})
		if err != nil {
			return nil, err
		}
		page.NextCursor = token
	}
	return page, nil
}

// 超过上限的limit静默收敛到上限, 不报错
func clampLimit(limit int32) int {
	if limit <= 0 {
		return constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		return constants.MaxLimit
	}
	return int(limit)
}
