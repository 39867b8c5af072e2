package handlers

import (
	"Murmur.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type RelationActionParam struct {
	FollowerID int64 `form:"follower_id" json:"follower_id"`
	FolloweeID int64 `form:"followee_id" json:"followee_id"`
	ActionType int32 `form:"action_type" json:"action_type"`
}

type FollowListParam struct {
	UserID int64  `form:"user_id" query:"user_id"`
	Limit  int32  `form:"limit" query:"limit"`
	Cursor string `form:"cursor" query:"cursor"`
}

type RelationCheckParam struct {
	CandidateID int64 `form:"candidate_id" query:"candidate_id"`
	TargetID    int64 `form:"target_id" query:"target_id"`
}

type FollowCountParam struct {
	UserID int64 `form:"user_id" query:"user_id"`
}

type FeedParam struct {
	ViewerID int64  `form:"viewer_id" query:"viewer_id"`
	Limit    int32  `form:"limit" query:"limit"`
	Cursor   string `form:"cursor" query:"cursor"`
}

type PublishMessageParam struct {
	AuthorID int64  `form:"author_id" json:"author_id"`
	Text     string `form:"text" json:"text"`
}

type AuthorMessagesParam struct {
	ViewerID int64 `form:"viewer_id" query:"viewer_id"`
	AuthorID int64 `form:"author_id" query:"author_id"`
	Limit    int32 `form:"limit" query:"limit"`
}

type DeleteUserParam struct {
	UserID int64 `form:"user_id" json:"user_id"`
}

type CreateUserParam struct {
	UserID   int64  `form:"user_id" json:"user_id"`
	UserName string `form:"user_name" json:"user_name"`
}
