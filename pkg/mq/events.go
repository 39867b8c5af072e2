package mq

// FollowEvent 关注关系变更事件
type FollowEvent struct {
	FollowerID int64  `json:"follower_id"` // 发起关注的用户ID
	FolloweeID int64  `json:"followee_id"` // 被关注的用户ID
	ActionType string `json:"action_type"` // "follow" or "unfollow"
	Timestamp  int64  `json:"timestamp"`   // 时间戳
	EventID    string `json:"event_id"`    // 事件ID
}

const (
	// 交换机名称
	FollowEventExchange = "follow_events"

	// 队列名称
	FollowEventQueue = "follow_event_queue"

	// 路由键
	FollowEventRoutingKey = "follow.changed"
)
