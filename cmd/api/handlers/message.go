package handlers

import (
	"context"

	msgsvc "Murmur.com/cmd/message/service"
	relsvc "Murmur.com/cmd/relation/service"
	"Murmur.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// PublishMessage 发布消息
func PublishMessage(ctx context.Context, c *app.RequestContext) {
	var param PublishMessageParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	checker := relsvc.NewRelationCheckService(ctx, deps.EdgeStore)
	msg, err := msgsvc.NewMessageService(ctx, deps.MessageRepo, checker).
		PostMessage(ctx, param.AuthorID, param.Text)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, msg)
}

// AuthorMessages 查看某作者的消息, 仅作者本人或其粉丝可见
func AuthorMessages(ctx context.Context, c *app.RequestContext) {
	var param AuthorMessagesParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	checker := relsvc.NewRelationCheckService(ctx, deps.EdgeStore)
	msgs, err := msgsvc.NewMessageService(ctx, deps.MessageRepo, checker).
		AuthorMessages(ctx, param.ViewerID, param.AuthorID, param.Limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, msgs)
}
