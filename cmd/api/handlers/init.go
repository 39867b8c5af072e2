package handlers

import (
	msgdb "Murmur.com/cmd/message/dal/db"
	reldb "Murmur.com/cmd/relation/dal/db"
	relsvc "Murmur.com/cmd/relation/service"
	userdb "Murmur.com/cmd/user/dal/db"
	"Murmur.com/pkg/cursor"
	"Murmur.com/pkg/mq"
)

// Deps 网关的依赖集合, 由main在启动时注入
// Producer和CountCache可以为nil, 对应功能退化为直连存储
type Deps struct {
	EdgeStore   *reldb.FollowRepo
	MessageRepo *msgdb.MessageRepo
	UserRepo    *userdb.UserRepo
	Codec       *cursor.Codec
	Producer    mq.FollowEventProducer
	CountCache  relsvc.CountCache
}

var deps Deps

func InitDeps(d Deps) {
	deps = d
}
