package handlers

import (
	"context"

	"Murmur.com/cmd/feed/service"
	"Murmur.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// Feed 获取关注者消息流
func Feed(ctx context.Context, c *app.RequestContext) {
	var param FeedParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if param.ViewerID == 0 {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	page, err := service.NewFeedService(ctx, deps.EdgeStore, deps.MessageRepo, deps.Codec).
		Feed(ctx, &service.FeedRequest{
			ViewerID: param.ViewerID,
			Limit:    param.Limit,
			Cursor:   param.Cursor,
		})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, page)
}
