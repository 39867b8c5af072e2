package dal

import (
	"Murmur.com/cmd/relation/dal/db"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var FollowRepoInstance *db.FollowRepo

func Init() {
	db.Init() // mysql init
	FollowRepoInstance = db.NewFollowRepo(db.DB)
	hlog.Info("follow repo initialized")
}
