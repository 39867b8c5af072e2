package mq

import "context"

// FollowEventProducer 关注事件生产者接口
type FollowEventProducer interface {
	PublishFollowEvent(ctx context.Context, event *FollowEvent) error
}

// 确保Producer实现FollowEventProducer接口
var _ FollowEventProducer = (*Producer)(nil)
