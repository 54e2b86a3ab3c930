package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nadirkerem/mongodb-ecommerce-app/cascade"
	"github.com/nadirkerem/mongodb-ecommerce-app/repository"
)

// Deps bundles the repositories and the cascade coordinator handed to
// every route group.
type Deps struct {
	Users       repository.Users
	Products    repository.Products
	Orders      repository.Orders
	Restaurants repository.Restaurants
	Boroughs    repository.Boroughs
	Cuisines    repository.Cuisines
	Cascade     *cascade.Coordinator
}

// SetupRoutes wires every entity group under /api.
func SetupRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api")

	SetupUserRoutes(api, deps)
	SetupProductRoutes(api, deps)
	SetupOrderRoutes(api, deps)
	SetupRestaurantRoutes(api, deps)
}
