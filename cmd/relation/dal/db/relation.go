package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Murmur.com/cmd/model"
	"Murmur.com/pkg/errno"
	"Murmur.com/pkg/utils"
	"gorm.io/gorm"
)

// FollowRepo 关注边存储
// 所有写入在返回前落库, 读操作不会观察到半写状态;
// 扫描按边ID升序(雪花ID, 即插入序), 并发插入只会追加在扫描位置之后
type FollowRepo struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) *FollowRepo {
	return &FollowRepo{db: db}
}

// Find 点查一条关注边, 不存在时返回(nil, nil)
func (r *FollowRepo) Find(ctx context.Context, followerID, followeeID int64) (*model.Follow, error) {
	var follow model.Follow
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		First(&follow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find follow edge: %w", err)
	}
	return &follow, nil
}

// Insert 写入一条新边, ID未分配时由雪花算法分配
// 同一对用户的边已存在时返回errno.DuplicateEdgeErr, 由Mutator吸收为幂等成功
func (r *FollowRepo) Insert(ctx context.Context, follow *model.Follow) (*model.Follow, error) {
	if follow == nil {
		return nil, errors.New("follow cannot be nil")
	}
	if follow.FollowerID == 0 || follow.FolloweeID == 0 {
		return nil, errors.New("follower_id and followee_id cannot be zero")
	}
	if follow.ID == 0 {
		follow.ID = utils.GenerateEdgeID()
	}
	follow.CreatedAt = time.Now()

	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.DuplicateEdgeErr
		}
		return nil, fmt.Errorf("failed to create follow edge: %w", err)
	}
	return follow, nil
}

// Delete 删除一条边, 返回是否确实删除了记录; 删除不存在的边不算错误
func (r *FollowRepo) Delete(ctx context.Context, followerID, followeeID int64) (bool, error) {
	if followerID == 0 || followeeID == 0 {
		return false, errors.New("follower_id and followee_id cannot be zero")
	}
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.Follow{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete follow edge: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteAllInvolving 级联删除该用户作为任一端点的所有边, 用于注销账号
func (r *FollowRepo) DeleteAllInvolving(ctx context.Context, userID int64) error {
	if userID == 0 {
		return errors.New("user_id cannot be zero")
	}
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? OR followee_id = ?", userID, userID).
		Delete(&model.Follow{}).Error; err != nil {
		return fmt.Errorf("failed to cascade delete follow edges: %w", err)
	}
	return nil
}

// ScanFollowers 扫描关注userID的边, 从afterID严格之后恢复
// 多取一条用于判断has_more
func (r *FollowRepo) ScanFollowers(ctx context.Context, followeeID, afterID int64, limit int) ([]*model.Follow, bool, error) {
	return r.scan(ctx, "followee_id", followeeID, afterID, limit)
}

// ScanFollowees 扫描userID关注的边, 从afterID严格之后恢复
func (r *FollowRepo) ScanFollowees(ctx context.Context, followerID, afterID int64, limit int) ([]*model.Follow, bool, error) {
	return r.scan(ctx, "follower_id", followerID, afterID, limit)
}

func (r *FollowRepo) scan(ctx context.Context, column string, anchorID, afterID int64, limit int) ([]*model.Follow, bool, error) {
	if anchorID == 0 {
		return nil, false, errors.New("anchor user_id cannot be zero")
	}
	if limit <= 0 {
		return []*model.Follow{}, false, nil
	}

	edges := make([]*model.Follow, 0, limit+1)
	err := r.db.WithContext(ctx).
		Where(column+" = ? AND id > ?", anchorID, afterID).
		Order("id ASC").
		Limit(limit + 1).
		Find(&edges).Error
	if err != nil {
		return nil, false, fmt.Errorf("failed to scan follow edges: %w", err)
	}

	hasMore := len(edges) > limit
	if hasMore {
		edges = edges[:limit]
	}
	return edges, hasMore, nil
}

// CountFollowers 获取粉丝数量
func (r *FollowRepo) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("followee_id = ?", userID).Count(&count).Error; err != nil {
		return -1, fmt.Errorf("failed to count followers: %w", err)
	}
	return count, nil
}

// CountFollowees 获取关注数量
func (r *FollowRepo) CountFollowees(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", userID).Count(&count).Error; err != nil {
		return -1, fmt.Errorf("failed to count followees: %w", err)
	}
	return count, nil
}
