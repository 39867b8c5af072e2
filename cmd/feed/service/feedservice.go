package service

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	msgdb "Murmur.com/cmd/message/dal/db"
	"Murmur.com/cmd/model"
	reldb "Murmur.com/cmd/relation/dal/db"
	"Murmur.com/pkg/constants"
	"Murmur.com/pkg/cursor"
	"Murmur.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"golang.org/x/sync/errgroup"
)

// FolloweeScanner 外层关注扫描契约
type FolloweeScanner interface {
	ScanFollowees(ctx context.Context, followerID, afterID int64, limit int) ([]*model.Follow, bool, error)
}

var _ FolloweeScanner = (*reldb.FollowRepo)(nil)

// MessageSource 按作者拉取消息的协作方契约
type MessageSource interface {
	MessagesByAuthor(ctx context.Context, authorID, beforeID int64, limit int) ([]*model.Message, error)
}

var _ MessageSource = (*msgdb.MessageRepo)(nil)

// FeedRequest Feed查询请求
type FeedRequest struct {
	ViewerID int64  `json:"viewer_id"`
	Limit    int32  `json:"limit"`
	Cursor   string `json:"cursor"`
}

// FeedService Feed聚合服务
// 游标携带两级位置: 外层关注扫描的边ID + 当前窗口内每个作者的消息高水位,
// 只有当前窗口的所有作者都被取尽后外层位置才会前移,
// 单级游标在窗口边界上要么重发要么漏发, 这里两级恢复保证跨页不重不漏
type FeedService struct {
	ctx    context.Context
	edges  FolloweeScanner
	source MessageSource
	codec  *cursor.Codec
}

func NewFeedService(ctx context.Context, edges FolloweeScanner, source MessageSource, codec *cursor.Codec) *FeedService {
	return &FeedService{ctx: ctx, edges: edges, source: source, codec: codec}
}

// Feed 返回viewer关注的所有作者的消息, 按时间倒序合并分页
func (s *FeedService) Feed(ctx context.Context, req *FeedRequest) (*model.FeedPage, error) {
	if req.ViewerID == 0 {
		return nil, errno.ParamErr
	}
	limit := int(req.Limit)
	if limit <= 0 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}

	pos := &cursor.FeedPosition{}
	if req.Cursor != "" {
		decoded, err := s.codec.Decode(req.Cursor, cursor.KindFeed, req.ViewerID)
		if err != nil {
			return nil, err
		}
		if decoded.Feed != nil {
			pos = decoded.Feed
		}
	}

	// 外层: 当前关注窗口
	edges, outerHasMore, err := s.edges.ScanFollowees(ctx, req.ViewerID, pos.OuterLastID, constants.FolloweeFanoutLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to scan followees for feed: %w", errno.StorageErr)
	}
	if len(edges) == 0 {
		return &model.FeedPage{Messages: []*model.Message{}}, nil
	}
	outerLast := edges[len(edges)-1].ID

	authors := make([]int64, 0, len(edges))
	for _, e := range edges {
		authors = append(authors, e.FolloweeID)
	}

	// 内层: 并发拉取各作者的消息, 每个作者多取一条用于判断窗口是否耗尽
	perAuthorCap := limit + 1
	results := make([][]*model.Message, len(authors))
	var failed atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.FanoutConcurrency)
	for i, authorID := range authors {
		i, authorID := i, authorID
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(gctx, constants.FanoutTimeout)
			defer cancel()
			msgs, err := s.source.MessagesByAuthor(callCtx, authorID, pos.Watermarks[authorID], perAuthorCap)
			if err != nil {
				if gctx.Err() != nil {
					// 调用方取消, 整页丢弃
					return gctx.Err()
				}
				// 单个消息源失败只降级该作者, 不中断整个请求
				hlog.CtxWarnf(gctx, "feed fan-out degraded, author %d excluded: %v", authorID, err)
				failed.Add(1)
				return nil
			}
			results[i] = msgs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if n := failed.Load(); n > 0 {
		hlog.CtxWarnf(ctx, "feed for viewer %d served degraded: %d of %d sources failed",
			req.ViewerID, n, len(authors))
	}

	// 合并: 时间倒序, 同一时刻按消息ID倒序保证稳定
	var all []*model.Message
	capped := false
	for _, msgs := range results {
		all = append(all, msgs...)
		if len(msgs) == perAuthorCap {
			capped = true
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})

	emit := all
	if len(emit) > limit {
		emit = emit[:limit]
	}

	page := &model.FeedPage{Messages: emit}

	// 续传位置: 窗口未取尽则停留在原窗口推进水位, 取尽后前移外层位置并清空水位
	windowHasMore := len(all) > len(emit) || capped
	var next *cursor.FeedPosition
	switch {
	case windowHasMore:
		watermarks := make(map[int64]int64, len(pos.Watermarks)+len(emit))
		for k, v := range pos.Watermarks {
			watermarks[k] = v
		}
		for _, m := range emit {
			// emit整体倒序, 同作者最后一次赋值即其最老的已发消息
			watermarks[m.AuthorID] = m.ID
		}
		next = &cursor.FeedPosition{OuterLastID: pos.OuterLastID, Watermarks: watermarks}
	case outerHasMore:
		next = &cursor.FeedPosition{OuterLastID: outerLast}
	}

	if next != nil {
		token, err := s.codec.Encode(&cursor.Position{
			Kind:   cursor.KindFeed,
			Anchor: req.ViewerID,
			Feed:   next,
		})
		if err != nil {
			return nil, err
		}
		page.NextCursor = token
	}
	return page, nil
}
