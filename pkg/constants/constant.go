package constants

import "time"

const (
	DataFormate = "2006-01-02 15:04:05"

	// 关注列表分页限制
	DefaultLimit = 20
	MaxLimit     = 50

	// Feed聚合参数
	FolloweeFanoutLimit = 50              // 单次外层关注扫描的窗口大小
	FanoutConcurrency   = 8               // 并发拉取作者消息的上限
	FanoutTimeout       = 2 * time.Second // 单个作者消息源的超时时间

	FollowTableName  = "follows"
	MessageTableName = "messages"
	UserTableName    = "users"
)
