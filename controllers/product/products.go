package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nadirkerem/mongodb-ecommerce-app/apierr"
	"github.com/nadirkerem/mongodb-ecommerce-app/cascade"
	"github.com/nadirkerem/mongodb-ecommerce-app/models"
	"github.com/nadirkerem/mongodb-ecommerce-app/repository"
	"github.com/nadirkerem/mongodb-ecommerce-app/validation"
)

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	UserRating  *float64 `json:"userRating"`
}

var sortFields = map[string]bool{
	"name":        true,
	"price":       true,
	"description": true,
	"category":    true,
	"userRating":  true,
}

func parseListOptions(c *gin.Context) (repository.ListOptions, error) {
	opts := repository.ListOptions{Limit: 20}
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil {
		opts.Limit = v
	}
	if v, err := strconv.ParseInt(c.Query("skip"), 10, 64); err == nil {
		opts.Skip = v
	}

	opts.SortField = c.Query("sortField")
	if opts.SortField != "" && !sortFields[opts.SortField] {
		return opts, &apierr.InvalidQueryError{Param: "sortField", Value: opts.SortField}
	}
	opts.SortOrder = c.DefaultQuery("sortOrder", "asc")
	if opts.SortOrder != "asc" && opts.SortOrder != "desc" {
		return opts, &apierr.InvalidQueryError{Param: "sortOrder", Value: opts.SortOrder}
	}
	return opts, nil
}

// GET /api/products
func GetProducts(products repository.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts, err := parseListOptions(c)
		if err != nil {
			apierr.Respond(c, err)
			return
		}

		list, err := products.Find(c.Request.Context(), opts)
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		if len(list) == 0 {
			apierr.Respond(c, &apierr.NotFoundError{Message: "No products found"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /api/products/:id
func GetProductByID(products repository.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.FindByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			apierr.Respond(c, apierr.NewNotFound("Product"))
			return
		}
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// POST /api/products
func CreateProduct(products repository.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, &apierr.ValidationError{Message: err.Error()})
			return
		}
		if err := validation.ProductCreate(req.Name, req.Price, req.Description, req.Category, req.UserRating); err != nil {
			apierr.Respond(c, err)
			return
		}

		created, err := products.Create(c.Request.Context(), &models.Product{
			Name:        req.Name,
			Price:       *req.Price,
			Description: req.Description,
			Category:    req.Category,
			UserRating:  req.UserRating,
		})
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// PUT /api/products/:id
func UpdateProduct(products repository.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update models.ProductUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			apierr.Respond(c, &apierr.ValidationError{Message: err.Error()})
			return
		}
		if err := validation.ProductUpdate(update); err != nil {
			apierr.Respond(c, err)
			return
		}

		updated, err := products.UpdateByID(c.Request.Context(), c.Param("id"), update)
		if errors.Is(err, repository.ErrNotFound) {
			apierr.Respond(c, apierr.NewNotFound("Product"))
			return
		}
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /api/products/:id
//
// Orders containing the product are removed entirely before the product
// itself goes.
func DeleteProduct(coordinator *cascade.Coordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := coordinator.DeleteProduct(c.Request.Context(), c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			apierr.Respond(c, apierr.NewNotFound("Product"))
			return
		}
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
