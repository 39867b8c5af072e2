package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"Murmur.com/cmd/model"
	"Murmur.com/pkg/cursor"
	"Murmur.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFolloweeScanner struct {
	edges []*model.Follow // 按ID升序
}

func (f *fakeFolloweeScanner) ScanFollowees(_ context.Context, followerID, afterID int64, limit int) ([]*model.Follow, bool, error) {
	var out []*model.Follow
	for _, e := range f.edges {
		if e.FollowerID != followerID || e.ID <= afterID {
			continue
		}
		out = append(out, e)
		if len(out) > limit {
			return out[:limit], true, nil
		}
	}
	return out, false, nil
}

type fakeMessageSource struct {
	byAuthor map[int64][]*model.Message // 每个作者按ID倒序
	fail     map[int64]bool
}

func (f *fakeMessageSource) MessagesByAuthor(ctx context.Context, authorID, beforeID int64, limit int) ([]*model.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.fail[authorID] {
		return nil, errors.New("message source unavailable")
	}
	var out []*model.Message
	for _, m := range f.byAuthor[authorID] {
		if beforeID > 0 && m.ID >= beforeID {
			continue
		}
		out = append(out, m)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func msg(id, authorID int64, ts time.Time) *model.Message {
	return &model.Message{ID: id, AuthorID: authorID, Text: "m", CreatedAt: ts}
}

func newFeedFixture(edges []*model.Follow, source *fakeMessageSource) *FeedService {
	// 每个作者的消息保持ID倒序, 与MessageRepo的返回顺序一致
	for _, msgs := range source.byAuthor {
		sort.Slice(msgs, func(i, j int) bool { return msgs[i].ID > msgs[j].ID })
	}
	codec := cursor.NewCodec([]byte("feed-test-secret"))
	return NewFeedService(context.Background(), &fakeFolloweeScanner{edges: edges}, source, codec)
}

// 关注A(t1,t3)和B(t2,t4)的viewer分两页各取2条, 应得到[4,3]和[2,1]
func TestFeedMergeOrderingAcrossPages(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	edges := []*model.Follow{
		{ID: 1, FollowerID: 10, FolloweeID: 100},
		{ID: 2, FollowerID: 10, FolloweeID: 200},
	}
	source := &fakeMessageSource{byAuthor: map[int64][]*model.Message{
		100: {msg(1, 100, base.Add(1*time.Minute)), msg(3, 100, base.Add(3*time.Minute))},
		200: {msg(2, 200, base.Add(2*time.Minute)), msg(4, 200, base.Add(4*time.Minute))},
	}}
	svc := newFeedFixture(edges, source)

	page1, err := svc.Feed(ctx, &FeedRequest{ViewerID: 10, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page1.Messages, 2)
	assert.Equal(t, int64(4), page1.Messages[0].ID)
	assert.Equal(t, int64(3), page1.Messages[1].ID)
	require.NotEmpty(t, page1.NextCursor)

	page2, err := svc.Feed(ctx, &FeedRequest{ViewerID: 10, Limit: 2, Cursor: page1.NextCursor})
	require.NoError(t, err)
	require.Len(t, page2.Messages, 2)
	assert.Equal(t, int64(2), page2.Messages[0].ID)
	assert.Equal(t, int64(1), page2.Messages[1].ID)
	assert.Empty(t, page2.NextCursor)
}

// 某个作者的消息源失败时该作者被排除, 整页仍然成功
func TestFeedDegradedOnSourceFailure(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	edges := []*model.Follow{
		{ID: 1, FollowerID: 10, FolloweeID: 100},
		{ID: 2, FollowerID: 10, FolloweeID: 200},
	}
	source := &fakeMessageSource{
		byAuthor: map[int64][]*model.Message{
			100: {msg(1, 100, base.Add(1 * time.Minute))},
			200: {msg(2, 200, base.Add(2 * time.Minute))},
		},
		fail: map[int64]bool{200: true},
	}
	svc := newFeedFixture(edges, source)

	page, err := svc.Feed(ctx, &FeedRequest{ViewerID: 10, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Messages, 1)
	assert.Equal(t, int64(100), page.Messages[0].AuthorID)
}

// 关注数超过外层窗口时, 跨窗口翻页仍然不重不漏
func TestFeedSpansOuterWindows(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	var edges []*model.Follow
	byAuthor := map[int64][]*model.Message{}
	const authorCount = 55 // FolloweeFanoutLimit是50, 需要两个外层窗口
	for i := int64(1); i <= authorCount; i++ {
		edges = append(edges, &model.Follow{ID: i, FollowerID: 10, FolloweeID: 1000 + i})
		byAuthor[1000+i] = []*model.Message{msg(5000+i, 1000+i, base.Add(time.Duration(i)*time.Second))}
	}
	svc := newFeedFixture(edges, &fakeMessageSource{byAuthor: byAuthor})

	seen := make(map[int64]int)
	token := ""
	for pages := 0; ; pages++ {
		require.Less(t, pages, 20, "feed pagination did not terminate")
		page, err := svc.Feed(ctx, &FeedRequest{ViewerID: 10, Limit: 10, Cursor: token})
		require.NoError(t, err)
		for _, m := range page.Messages {
			seen[m.ID]++
		}
		if page.NextCursor == "" {
			break
		}
		token = page.NextCursor
	}

	assert.Len(t, seen, authorCount)
	for id, n := range seen {
		assert.Equal(t, 1, n, "message %d", id)
	}
}

func TestFeedEmptyWithoutFollowees(t *testing.T) {
	svc := newFeedFixture(nil, &fakeMessageSource{byAuthor: map[int64][]*model.Message{}})

	page, err := svc.Feed(context.Background(), &FeedRequest{ViewerID: 10, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Messages)
	assert.Empty(t, page.NextCursor)
}

// 列表接口签发的游标不能用于Feed
func TestFeedRejectsForeignCursor(t *testing.T) {
	codec := cursor.NewCodec([]byte("feed-test-secret"))
	token, err := codec.Encode(&cursor.Position{Kind: cursor.KindFollowers, Anchor: 10, LastID: 1})
	require.NoError(t, err)

	svc := NewFeedService(context.Background(),
		&fakeFolloweeScanner{}, &fakeMessageSource{byAuthor: map[int64][]*model.Message{}}, codec)
	_, err = svc.Feed(context.Background(), &FeedRequest{ViewerID: 10, Limit: 10, Cursor: token})
	assert.ErrorIs(t, err, errno.InvalidCursorErr)
}

// 调用方取消后整页丢弃, 不返回截断结果
func TestFeedCancellation(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	edges := []*model.Follow{{ID: 1, FollowerID: 10, FolloweeID: 100}}
	source := &fakeMessageSource{byAuthor: map[int64][]*model.Message{
		100: {msg(1, 100, base)},
	}}
	svc := newFeedFixture(edges, source)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Feed(ctx, &FeedRequest{ViewerID: 10, Limit: 10})
	assert.ErrorIs(t, err, context.Canceled)
}
