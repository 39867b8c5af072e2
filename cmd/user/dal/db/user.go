package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Murmur.com/cmd/model"
	"gorm.io/gorm"
)

// UserRepo 用户目录存储
type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// CheckUserExistById 判断用户是否存在
func (r *UserRepo) CheckUserExistById(ctx context.Context, userID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

// CreateUser 创建用户
func (r *UserRepo) CreateUser(ctx context.Context, user *model.User) error {
	if user == nil || user.UserID == 0 {
		return errors.New("user_id cannot be zero")
	}
	user.CreatedAt = time.Now()
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// DeleteUser 删除用户记录, 关系边的级联清理由上层服务触发
func (r *UserRepo) DeleteUser(ctx context.Context, userID int64) error {
	if userID == 0 {
		return errors.New("user_id cannot be zero")
	}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).Delete(&model.User{}).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
