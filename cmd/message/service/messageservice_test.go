package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"Murmur.com/cmd/model"
	"Murmur.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageStore struct {
	mu     sync.Mutex
	nextID int64
	msgs   []*model.Message
}

func (f *fakeMessageStore) Insert(ctx context.Context, msg *model.Message) (*model.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	stored := &model.Message{ID: f.nextID, AuthorID: msg.AuthorID, Text: msg.Text}
	f.msgs = append(f.msgs, stored)
	return stored, nil
}

func (f *fakeMessageStore) MessagesByAuthor(ctx context.Context, authorID, beforeID int64, limit int) ([]*model.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Message
	for i := len(f.msgs) - 1; i >= 0 && len(out) < limit; i-- {
		m := f.msgs[i]
		if m.AuthorID != authorID {
			continue
		}
		if beforeID != 0 && m.ID >= beforeID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type fakeFollowChecker struct {
	pairs map[[2]int64]bool
}

func (f *fakeFollowChecker) IsFollowerOf(ctx context.Context, candidateID, targetID int64) (bool, error) {
	return f.pairs[[2]int64{candidateID, targetID}], nil
}

func TestPostAndListOwnMessages(t *testing.T) {
	ctx := context.Background()
	store := &fakeMessageStore{}
	svc := NewMessageService(ctx, store, &fakeFollowChecker{pairs: map[[2]int64]bool{}})

	_, err := svc.PostMessage(ctx, 7, "first")
	require.NoError(t, err)
	_, err = svc.PostMessage(ctx, 7, "second")
	require.NoError(t, err)

	msgs, err := svc.AuthorMessages(ctx, 7, 7, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "second", msgs[0].Text)
	assert.Equal(t, "first", msgs[1].Text)
}

func TestAuthorMessagesRequiresFollow(t *testing.T) {
	ctx := context.Background()
	store := &fakeMessageStore{}
	checker := &fakeFollowChecker{pairs: map[[2]int64]bool{{2, 1}: true}}
	svc := NewMessageService(ctx, store, checker)

	_, err := svc.PostMessage(ctx, 1, "hello")
	require.NoError(t, err)

	msgs, err := svc.AuthorMessages(ctx, 2, 1, 10)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)

	_, err = svc.AuthorMessages(ctx, 3, 1, 10)
	require.Error(t, err)
	assert.EqualValues(t, errno.RequestErrCode, errno.ConvertErr(err).ErrCode)
}

func TestPostMessageValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewMessageService(ctx, &fakeMessageStore{}, &fakeFollowChecker{})

	_, err := svc.PostMessage(ctx, 0, "hi")
	assert.Error(t, err)

	_, err = svc.PostMessage(ctx, 1, "   ")
	assert.Error(t, err)

	_, err = svc.PostMessage(ctx, 1, strings.Repeat("x", 501))
	assert.Error(t, err)
}
