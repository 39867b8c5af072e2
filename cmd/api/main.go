package main

import (
	"context"
	"fmt"

	"Murmur.com/cmd/api/handlers"
	msgdb "Murmur.com/cmd/message/dal/db"
	reldal "Murmur.com/cmd/relation/dal"
	"Murmur.com/cmd/relation/infras/redis"
	userdb "Murmur.com/cmd/user/dal/db"
	"Murmur.com/config"
	"Murmur.com/pkg/cursor"
	"Murmur.com/pkg/errno"
	"Murmur.com/pkg/mq"
	"Murmur.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

func Init() {
	config.Init()
	reldal.Init()
	msgdb.Init()
	userdb.Init()
	redis.Init()

	d := handlers.Deps{
		EdgeStore:   reldal.FollowRepoInstance,
		MessageRepo: msgdb.NewMessageRepo(msgdb.DB),
		UserRepo:    userdb.NewUserRepo(userdb.DB),
		Codec:       cursor.NewCodec([]byte(config.ConfigInfo.Server.CursorSecret)),
		CountCache:  redis.NewRelationCacheManager(redis.GetClient()),
	}

	// 事件通道不可用不阻塞启动, 关注事件退化为不发布
	producer, err := mq.NewProducer(utils.GetRabbitMqUrl())
	if err != nil {
		hlog.Warnf("rabbitmq unavailable, follow events disabled: %v", err)
	} else {
		d.Producer = producer
	}

	handlers.InitDeps(d)
}

func main() {
	Init()
	addr := config.ConfigInfo.Server.Addr
	if addr == "" {
		addr = "0.0.0.0:8888"
	}
	r := server.New(
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	register(r)

	r.Spin()
}
