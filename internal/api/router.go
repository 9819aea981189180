package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"itemledger/internal/handler"
	"itemledger/internal/middleware"
)

func SetupRouter(
	userHandler *handler.UserHandler,
	itemHandler *handler.ItemHandler,
	sessionMiddleware gin.HandlerFunc,
	logger *slog.Logger,
) *gin.Engine {
	r := gin.New()
	r.SetTrustedProxies(nil)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(sessionMiddleware)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// User routes
	r.POST("/users/", userHandler.CreateUser)
	r.GET("/users/", userHandler.ListUsers)
	r.GET("/users/:user_id", userHandler.GetUser)
	r.POST("/users/:user_id/items/", itemHandler.CreateItemForUser)

	// Item routes
	r.GET("/items/", itemHandler.ListItems)

	return r
}
