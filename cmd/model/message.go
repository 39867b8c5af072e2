package model

import (
	"time"

	"Murmur.com/pkg/constants"
)

// Message 短文本消息, 仅关注者可见
type Message struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	AuthorID  int64     `json:"author_id" gorm:"index:idx_author_created"`
	Text      string    `json:"text" gorm:"type:varchar(500)"`
	CreatedAt time.Time `json:"created_at"`
}

func (Message) TableName() string {
	return constants.MessageTableName
}

// FeedPage 一页按时间倒序合并后的消息
type FeedPage struct {
	Messages   []*Message `json:"messages"`
	NextCursor string     `json:"next_cursor,omitempty"`
}
