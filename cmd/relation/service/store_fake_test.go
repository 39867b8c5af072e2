package service

import (
	"context"
	"sync"

	"Murmur.com/cmd/model"
	"Murmur.com/pkg/errno"
)

// fakeEdgeStore 内存版EdgeStore测试替身
// 与MySQL实现保持同样的语义: 唯一对约束、ID单调递增、按ID升序扫描
type fakeEdgeStore struct {
	mu     sync.Mutex
	nextID int64
	edges  []*model.Follow
	pairs  map[[2]int64]*model.Follow
}

func newFakeEdgeStore() *fakeEdgeStore {
	return &fakeEdgeStore{pairs: make(map[[2]int64]*model.Follow)}
}

func (f *fakeEdgeStore) Find(_ context.Context, followerID, followeeID int64) (*model.Follow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pairs[[2]int64{followerID, followeeID}], nil
}

func (f *fakeEdgeStore) Insert(_ context.Context, follow *model.Follow) (*model.Follow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := [2]int64{follow.FollowerID, follow.FolloweeID}
	if _, ok := f.pairs[key]; ok {
		return nil, errno.DuplicateEdgeErr
	}
	f.nextID++
	follow.ID = f.nextID
	f.pairs[key] = follow
	f.edges = append(f.edges, follow)
	return follow, nil
}

func (f *fakeEdgeStore) Delete(_ context.Context, followerID, followeeID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := [2]int64{followerID, followeeID}
	edge, ok := f.pairs[key]
	if !ok {
		return false, nil
	}
	delete(f.pairs, key)
	f.removeLocked(edge.ID)
	return true, nil
}

func (f *fakeEdgeStore) DeleteAllInvolving(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.edges[:0]
	for _, e := range f.edges {
		if e.FollowerID == userID || e.FolloweeID == userID {
			delete(f.pairs, [2]int64{e.FollowerID, e.FolloweeID})
			continue
		}
		kept = append(kept, e)
	}
	f.edges = kept
	return nil
}

func (f *fakeEdgeStore) ScanFollowers(_ context.Context, followeeID, afterID int64, limit int) ([]*model.Follow, bool, error) {
	return f.scan(func(e *model.Follow) bool { return e.FolloweeID == followeeID }, afterID, limit)
}

func (f *fakeEdgeStore) ScanFollowees(_ context.Context, followerID, afterID int64, limit int) ([]*model.Follow, bool, error) {
	return f.scan(func(e *model.Follow) bool { return e.FollowerID == followerID }, afterID, limit)
}

func (f *fakeEdgeStore) CountFollowers(_ context.Context, userID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, e := range f.edges {
		if e.FolloweeID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeEdgeStore) CountFollowees(_ context.Context, userID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, e := range f.edges {
		if e.FollowerID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeEdgeStore) scan(match func(*model.Follow) bool, afterID int64, limit int) ([]*model.Follow, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Follow
	for _, e := range f.edges { // edges按ID升序追加
		if !match(e) || e.ID <= afterID {
			continue
		}
		out = append(out, e)
		if len(out) > limit {
			return out[:limit], true, nil
		}
	}
	return out, false, nil
}

func (f *fakeEdgeStore) removeLocked(id int64) {
	for i, e := range f.edges {
		if e.ID == id {
			f.edges = append(f.edges[:i], f.edges[i+1:]...)
			return
		}
	}
}

func (f *fakeEdgeStore) edgeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.edges)
}

var _ EdgeStore = (*fakeEdgeStore)(nil)
