package router

import (
	"github.com/gin-gonic/gin"

	"usercenter/internal/controllers/user"
	"usercenter/internal/middleware"
	"usercenter/internal/service"
)

func registerUser(router *gin.RouterGroup, srv service.Service) {
	userController := user.NewUserController(srv)
	router.POST("/views", userController.Mount)
	router.DELETE("/views/:view", userController.Unmount)

	viewGroup := router.Group("/views/:view", middleware.View(srv))
	{
		viewGroup.GET("/users", userController.List)
		viewGroup.POST("/users", userController.Create)
		viewGroup.DELETE("/users", userController.BatchDelete)
		viewGroup.GET("/users/:id", userController.Get)
		viewGroup.PUT("/users/:id", userController.Update)
		viewGroup.DELETE("/users/:id", userController.Delete)
		viewGroup.PATCH("/users/:id/status", userController.ToggleStatus)

		viewGroup.POST("/search", userController.Search)
		viewGroup.POST("/reset", userController.Reset)
		viewGroup.PUT("/selection", userController.Select)

		viewGroup.POST("/confirmations/:confirmation", userController.Confirm)
		viewGroup.DELETE("/confirmations/:confirmation", userController.Cancel)

		viewGroup.GET("/export", userController.Export)
		viewGroup.POST("/import", userController.Import)
	}
}
