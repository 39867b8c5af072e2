package model

import (
	"time"

	"Murmur.com/pkg/constants"
)

// Follow 关注关系实体
// (follower_id, followee_id)上的唯一索引保证同一对用户至多存在一条边,
// 并发重复关注由存储层拒绝而不是应用层互斥
type Follow struct {
	ID         int64     `json:"-" gorm:"primaryKey"` // 存储寻址用, 不对外暴露
	FollowerID int64     `json:"follower_id" gorm:"uniqueIndex:uk_follower_followee,priority:1;index:idx_follower"`
	FolloweeID int64     `json:"followee_id" gorm:"uniqueIndex:uk_follower_followee,priority:2;index:idx_followee"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return constants.FollowTableName
}

// Page 一页用户ID与可选的续传游标, 游标为空表示没有更多结果
type Page struct {
	Items      []int64 `json:"items"`
	NextCursor string  `json:"next_cursor,omitempty"`
}

// FollowCounts 关注/粉丝计数
type FollowCounts struct {
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
}
