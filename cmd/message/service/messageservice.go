package service

import (
	"context"
	"fmt"
	"strings"

	msgdb "Murmur.com/cmd/message/dal/db"
	"Murmur.com/cmd/model"
	"Murmur.com/pkg/constants"
	"Murmur.com/pkg/errno"
)

// MessageStore 消息存储契约, 由dal/db.MessageRepo实现
type MessageStore interface {
	Insert(ctx context.Context, msg *model.Message) (*model.Message, error)
	MessagesByAuthor(ctx context.Context, authorID, beforeID int64, limit int) ([]*model.Message, error)
}

var _ MessageStore = (*msgdb.MessageRepo)(nil)

// FollowChecker 可见性判断依赖的关系点查
type FollowChecker interface {
	IsFollowerOf(ctx context.Context, candidateID, targetID int64) (bool, error)
}

const maxMessageLen = 500

// MessageService 消息发布与作者消息查询
// 消息本身的存储是协作方职责, 这里只关心它与关系图的交互:
// 作者的消息仅对作者本人和其粉丝可见
type MessageService struct {
	ctx     context.Context
	store   MessageStore
	checker FollowChecker
}

func NewMessageService(ctx context.Context, store MessageStore, checker FollowChecker) *MessageService {
	return &MessageService{ctx: ctx, store: store, checker: checker}
}

// PostMessage 发布一条消息
func (s *MessageService) PostMessage(ctx context.Context, authorID int64, text string) (*model.Message, error) {
	if authorID == 0 {
		return nil, errno.ParamErr
	}
	text = strings.TrimSpace(text)
	if text == "" || len(text) > maxMessageLen {
		return nil, errno.ParamErr.WithMessage("message text length out of range")
	}

	msg, err := s.store.Insert(ctx, &model.Message{AuthorID: authorID, Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to post message: %w", errno.StorageErr)
	}
	return msg, nil
}

// AuthorMessages viewer查看author的消息, 需要viewer是author本人或其粉丝
func (s *MessageService) AuthorMessages(ctx context.Context, viewerID, authorID int64, limit int32) ([]*model.Message, error) {
	if viewerID == 0 || authorID == 0 {
		return nil, errno.ParamErr
	}

	if viewerID != authorID {
		ok, err := s.checker.IsFollowerOf(ctx, viewerID, authorID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errno.RequestErr.WithMessage("viewer does not follow this author")
		}
	}

	n := int(limit)
	if n <= 0 {
		n = constants.DefaultLimit
	} else if n > constants.MaxLimit {
		n = constants.MaxLimit
	}
	msgs, err := s.store.MessagesByAuthor(ctx, authorID, 0, n)
	if err != nil {
		return nil, fmt.Errorf("failed to list author messages: %w", errno.StorageErr)
	}
	return msgs, nil
}
