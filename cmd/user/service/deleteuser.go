package service

import (
	"context"
	"fmt"

	"Murmur.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// UserDirectory 用户目录契约, 由dal/db.UserRepo实现
type UserDirectory interface {
	CheckUserExistById(ctx context.Context, userID int64) (bool, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// EdgeCascader 注销用户时需要的边级联清理入口
type EdgeCascader interface {
	DeleteAllInvolving(ctx context.Context, userID int64) error
}

// DeleteUserService 注销用户服务
// 先清边再删用户, 避免留下指向已删除用户的悬挂边
type DeleteUserService struct {
	ctx   context.Context
	users UserDirectory
	edges EdgeCascader
}

func NewDeleteUserService(ctx context.Context, users UserDirectory, edges EdgeCascader) *DeleteUserService {
	return &DeleteUserService{ctx: ctx, users: users, edges: edges}
}

func (s *DeleteUserService) DeleteUser(ctx context.Context, userID int64) error {
	if userID == 0 {
		return errno.ParamErr
	}

	exist, err := s.users.CheckUserExistById(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", errno.StorageErr)
	}
	if !exist {
		// 删除不存在的用户视为幂等成功
		return nil
	}

	if err := s.edges.DeleteAllInvolving(ctx, userID); err != nil {
		hlog.CtxErrorf(ctx, "cascade delete edges failed for user %d: %v", userID, err)
		return fmt.Errorf("failed to cascade delete follow edges: %w", errno.StorageErr)
	}
	if err := s.users.DeleteUser(ctx, userID); err != nil {
		hlog.CtxErrorf(ctx, "delete user %d failed: %v", userID, err)
		return fmt.Errorf("failed to delete user: %w", errno.StorageErr)
	}
	return nil
}
