package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Murmur.com/cmd/model"
	"Murmur.com/pkg/utils"
	"gorm.io/gorm"
)

// MessageRepo 消息存储
// 消息ID由雪花算法分配, 按ID倒序即为时间倒序
type MessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

// Insert 写入一条消息
func (r *MessageRepo) Insert(ctx context.Context, msg *model.Message) (*model.Message, error) {
	if msg == nil {
		return nil, errors.New("message cannot be nil")
	}
	if msg.AuthorID == 0 {
		return nil, errors.New("author_id cannot be zero")
	}
	if msg.ID == 0 {
		msg.ID = utils.GenerateMessageID()
	}
	msg.CreatedAt = time.Now()

	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return msg, nil
}

// MessagesByAuthor 返回某作者的消息, 时间倒序
// beforeID>0时只返回严格早于该消息ID的消息, 用作Feed聚合的高水位恢复点
func (r *MessageRepo) MessagesByAuthor(ctx context.Context, authorID, beforeID int64, limit int) ([]*model.Message, error) {
	if authorID == 0 {
		return nil, errors.New("author_id cannot be zero")
	}
	if limit <= 0 {
		return []*model.Message{}, nil
	}

	query := r.db.WithContext(ctx).Where("author_id = ?", authorID)
	if beforeID > 0 {
		query = query.Where("id < ?", beforeID)
	}

	msgs := make([]*model.Message, 0, limit)
	if err := query.Order("id DESC").Limit(limit).Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages by author: %w", err)
	}
	return msgs, nil
}
