package service

import (
	"context"
	"fmt"

	"Murmur.com/cmd/model"
	"Murmur.com/pkg/cursor"
	"Murmur.com/pkg/errno"
)

// FollowingListService 关注列表查询服务
type FollowingListService struct {
	ctx   context.Context
	store EdgeStore
	codec *cursor.Codec
}

func NewFollowingListService(ctx context.Context, store EdgeStore, codec *cursor.Codec) *FollowingListService {
	return &FollowingListService{ctx: ctx, store: store, codec: codec}
}

// FollowingList 分页返回req.UserID关注的用户ID
func (s *FollowingListService) FollowingList(ctx context.Context, req *FollowListRequest) (*model.Page, error) {
	if req.UserID == 0 {
		return nil, errno.ParamErr
	}
	limit := clampLimit(req.Limit)

	afterID := int64(0)
	if req.Cursor != "" {
		pos, err := s.codec.Decode(req.Cursor, cursor.KindFollowees, req.UserID)
		if err != nil {
			return nil, err
		}
		afterID = pos.LastID
	}

	edges, hasMore, err := s.store.ScanFollowees(ctx, req.UserID, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get following list: %w", errno.StorageErr)
	}

	page := &model.Page{Items: make([]int64, 0, len(edges))}
	for _, e := range edges {
		page.Items = append(page.Items, e.FolloweeID)
	}

	if hasMore {
		token, err := s.codec.Encode(&cursor.Position{
			Kind:   cursor.KindFollowees,
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
