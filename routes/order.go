package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/nadirkerem/mongodb-ecommerce-app/controllers/order"
)

func SetupOrderRoutes(api *gin.RouterGroup, deps Deps) {
	orders := api.Group("/orders")
	{
		orders.GET("", orderControllers.GetOrders(deps.Orders))
		orders.GET("/:id", orderControllers.GetOrderByID(deps.Orders, deps.Users, deps.Products))
		orders.POST("", orderControllers.CreateOrder(deps.Orders, deps.Users, deps.Products))
		orders.PUT("/:id", orderControllers.UpdateOrder(deps.Orders, deps.Users, deps.Products))
		orders.DELETE("/:id", orderControllers.DeleteOrder(deps.Orders))

		orders.GET("/user/:userId", orderControllers.GetOrdersByUser(deps.Orders, deps.Users))
		orders.GET("/product/:productId", orderControllers.GetOrdersByProduct(deps.Orders, deps.Products))
	}
}
