package routes

import (
	"github.com/gin-gonic/gin"

	restaurantControllers "github.com/nadirkerem/mongodb-ecommerce-app/controllers/restaurant"
)

func SetupRestaurantRoutes(api *gin.RouterGroup, deps Deps) {
	restaurants := api.Group("/restaurants")
	{
		restaurants.GET("", restaurantControllers.GetRestaurants(deps.Restaurants, deps.Boroughs, deps.Cuisines))
		restaurants.GET("/:id", restaurantControllers.GetRestaurantByID(deps.Restaurants, deps.Boroughs, deps.Cuisines))
		restaurants.POST("", restaurantControllers.CreateRestaurant(deps.Restaurants))
		restaurants.PUT("/:id", restaurantControllers.UpdateRestaurant(deps.Restaurants))
		restaurants.DELETE("/:id", restaurantControllers.DeleteRestaurant(deps.Restaurants))
	}
}
