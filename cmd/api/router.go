package main

import (
	"Murmur.com/cmd/api/handlers"
	"github.com/cloudwego/hertz/pkg/app/server"
)

func register(r *server.Hertz) {
	v1 := r.Group("/v1")

	relation := v1.Group("/relation")
	relation.POST("/action", handlers.RelationAction)
	relation.GET("/follower/list", handlers.FollowerList)
	relation.GET("/following/list", handlers.FollowingList)
	relation.GET("/check", handlers.RelationCheck)
	relation.GET("/count", handlers.FollowCount)

	feed := v1.Group("/feed")
	feed.GET("/", handlers.Feed)

	message := v1.Group("/message")
	message.POST("/publish", handlers.PublishMessage)
	message.GET("/list", handlers.AuthorMessages)

	user := v1.Group("/user")
	user.POST("/create", handlers.CreateUser)
	user.POST("/delete", handlers.DeleteUser)
}
