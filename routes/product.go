package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/nadirkerem/mongodb-ecommerce-app/controllers/product"
)

func SetupProductRoutes(api *gin.RouterGroup, deps Deps) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(deps.Products))
		products.GET("/export", productcontroller.ExportProducts(deps.Products))
		products.GET("/:id", productcontroller.GetProductByID(deps.Products))
		products.POST("", productcontroller.CreateProduct(deps.Products))
		products.PUT("/:id", productcontroller.UpdateProduct(deps.Products))
		products.DELETE("/:id", productcontroller.DeleteProduct(deps.Cascade))
	}
}
