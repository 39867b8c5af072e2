package model

import (
	"time"

	"Murmur.com/pkg/constants"
)

// User 用户实体, 关系图核心只引用其ID
type User struct {
	UserID    int64     `json:"user_id" gorm:"column:user_id;primaryKey"`
	UserName  string    `json:"user_name" gorm:"type:varchar(128)"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return constants.UserTableName
}
