package handlers

import (
	"context"

	"Murmur.com/cmd/relation/service"
	"Murmur.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// RelationAction 关注/取关
func RelationAction(ctx context.Context, c *app.RequestContext) {
	var param RelationActionParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	err := service.NewRelationService(ctx, deps.EdgeStore, deps.Producer, deps.CountCache).
		RelationAction(ctx, &service.RelationActionRequest{
			FollowerID: param.FollowerID,
			FolloweeID: param.FolloweeID,
			ActionType: param.ActionType,
		})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// FollowerList 获取粉丝列表
func FollowerList(ctx context.Context, c *app.RequestContext) {
	var param FollowListParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	page, err := service.NewFollowerListService(ctx, deps.EdgeStore, deps.Codec).
		FollowerList(ctx, &service.FollowListRequest{
			UserID: param.UserID,
			Limit:  param.Limit,
			Cursor: param.Cursor,
		})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, page)
}

// FollowingList 获取关注列表
func FollowingList(ctx context.Context, c *app.RequestContext) {
	var param FollowListParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	page, err := service.NewFollowingListService(ctx, deps.EdgeStore, deps.Codec).
		FollowingList(ctx, &service.FollowListRequest{
			UserID: param.UserID,
			Limit:  param.Limit,
			Cursor: param.Cursor,
		})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, page)
}

// RelationCheck 判断candidate是否关注target
func RelationCheck(ctx context.Context, c *app.RequestContext) {
	var param RelationCheckParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if param.CandidateID == 0 || param.TargetID == 0 {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	ok, err := service.NewRelationCheckService(ctx, deps.EdgeStore).
		IsFollowerOf(ctx, param.CandidateID, param.TargetID)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"following": ok})
}

// FollowCount 获取关注/粉丝计数
func FollowCount(ctx context.Context, c *app.RequestContext) {
	var param FollowCountParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if param.UserID == 0 {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	counts, err := service.NewFollowCountService(ctx, deps.EdgeStore, deps.CountCache).
		FollowCounts(ctx, param.UserID)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, counts)
}
