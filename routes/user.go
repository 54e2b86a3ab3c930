package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/nadirkerem/mongodb-ecommerce-app/controllers/user"
)

func SetupUserRoutes(api *gin.RouterGroup, deps Deps) {
	users := api.Group("/users")
	{
		users.GET("", userControllers.GetUsers(deps.Users))
		users.GET("/:id", userControllers.GetUserByID(deps.Users))
		users.POST("", userControllers.CreateUser(deps.Users))
		users.PUT("/:id", userControllers.UpdateUser(deps.Users))
		users.DELETE("/:id", userControllers.DeleteUser(deps.Cascade))
	}
}
