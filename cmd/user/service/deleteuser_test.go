package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserDirectory struct {
	users   map[int64]bool
	deleted []int64
}

func (f *fakeUserDirectory) CheckUserExistById(_ context.Context, userID int64) (bool, error) {
	return f.users[userID], nil
}

func (f *fakeUserDirectory) DeleteUser(_ context.Context, userID int64) error {
	delete(f.users, userID)
	f.deleted = append(f.deleted, userID)
	return nil
}

type fakeCascader struct {
	cascaded []int64
}

func (f *fakeCascader) DeleteAllInvolving(_ context.Context, userID int64) error {
	f.cascaded = append(f.cascaded, userID)
	return nil
}

func TestDeleteUserCascades(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserDirectory{users: map[int64]bool{42: true}}
	edges := &fakeCascader{}
	svc := NewDeleteUserService(ctx, users, edges)

	require.NoError(t, svc.DeleteUser(ctx, 42))
	assert.Equal(t, []int64{42}, edges.cascaded)
	assert.Equal(t, []int64{42}, users.deleted)
}

func TestDeleteMissingUserIsNoop(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserDirectory{users: map[int64]bool{}}
	edges := &fakeCascader{}
	svc := NewDeleteUserService(ctx, users, edges)

	require.NoError(t, svc.DeleteUser(ctx, 42))
	assert.Empty(t, edges.cascaded)
	assert.Empty(t, users.deleted)
}
