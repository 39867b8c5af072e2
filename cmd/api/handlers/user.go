package handlers

import (
	"context"

	"Murmur.com/cmd/model"
	"Murmur.com/cmd/user/service"
	"Murmur.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// CreateUser 注册用户记录
func CreateUser(ctx context.Context, c *app.RequestContext) {
	var param CreateUserParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if param.UserID == 0 {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	if err := deps.UserRepo.CreateUser(ctx, &model.User{
		UserID:   param.UserID,
		UserName: param.UserName,
	}); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// DeleteUser 删除用户并级联清理其全部关注边
func DeleteUser(ctx context.Context, c *app.RequestContext) {
	var param DeleteUserParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if param.UserID == 0 {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	err := service.NewDeleteUserService(ctx, deps.UserRepo, deps.EdgeStore).
		DeleteUser(ctx, param.UserID)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
