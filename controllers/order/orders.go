package orderControllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nadirkerem/mongodb-ecommerce-app/apierr"
	"github.com/nadirkerem/mongodb-ecommerce-app/models"
	"github.com/nadirkerem/mongodb-ecommerce-app/repository"
	"github.com/nadirkerem/mongodb-ecommerce-app/validation"
)

type CreateOrderRequest struct {
	User        string                  `json:"user"`
	Products    []models.OrderItemInput `json:"products"`
	TotalAmount *float64                `json:"totalAmount"`
	Status      string                  `json:"status"`
}

var sortFields = map[string]bool{
	"createdAt":   true,
	"totalAmount": true,
	"status":      true,
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

// GET /api/orders
func GetOrders(orders repository.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts, err := parseListOptions(c)
		if err != nil {
			apierr.Respond(c, err)
			return
		}

		list, err := orders.Find(c.Request.Context(), opts)
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		if len(list) == 0 {
			apierr.Respond(c, &apierr.NotFoundError{Message: "No orders found"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /api/orders/:id
//
// The user and product references come back expanded into embedded
// documents. A dangling reference expands to null rather than failing
// the read.
func GetOrderByID(orders repository.Orders, users repository.Users, products repository.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		order, err := orders.FindByID(ctx, c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			apierr.Respond(c, apierr.NewNotFound("Order"))
			return
		}
		if err != nil {
			apierr.Respond(c, err)
			return
		}

		expanded, err := expandOrder(ctx, users, products, order)
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, expanded)
	}
}

func expandOrder(ctx context.Context, users repository.Users, products repository.Products, order *models.Order) (*models.ExpandedOrder, error) {
	expanded := &models.ExpandedOrder{
		ID:          order.ID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
	}

	user, err := users.FindByID(ctx, order.User.Hex())
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	expanded.User = user

	for _, item := range order.Products {
		product, err := products.FindByID(ctx, item.Product.Hex())
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		expanded.Products = append(expanded.Products, models.ExpandedOrderItem{
			Product:  product,
			Quantity: item.Quantity,
		})
	}
	return expanded, nil
}

// POST /api/orders
func CreateOrder(orders repository.Orders, users repository.Users, products repository.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, &apierr.ValidationError{Message: err.Error()})
			return
		}
		if err := validation.OrderCreate(req.User, req.Products, req.TotalAmount, req.Status); err != nil {
			apierr.Respond(c, err)
			return
		}

		ctx := c.Request.Context()
		if err := checkReferences(ctx, users, products, req.User, req.Products); err != nil {
			apierr.Respond(c, err)
			return
		}

		userOID, _ := primitive.ObjectIDFromHex(req.User)
		items := make([]models.OrderItem, 0, len(req.Products))
		for _, item := range req.Products {
			productOID, _ := primitive.ObjectIDFromHex(item.Product)
			items = append(items, models.OrderItem{Product: productOID, Quantity: item.Quantity})
		}
		status, _ := models.ParseOrderStatus(req.Status)

		created, err := orders.Create(ctx, &models.Order{
			User:        userOID,
			Products:    items,
			TotalAmount: *req.TotalAmount,
			Status:      status,
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// PUT /api/orders/:id
//
// Only supplied fields are re-checked: an update without products skips
// the product existence checks entirely.
func UpdateOrder(orders repository.Orders, users repository.Users, products repository.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update models.OrderUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			apierr.Respond(c, &apierr.ValidationError{Message: err.Error()})
			return
		}
		if err := validation.OrderUpdate(update); err != nil {
			apierr.Respond(c, err)
			return
		}

		ctx := c.Request.Context()
		user := ""
		if update.User != nil {
			user = *update.User
		}
		var items []models.OrderItemInput
		if update.Products != nil {
			items = *update.Products
		}
		if err := checkReferences(ctx, users, products, user, items); err != nil {
			apierr.Respond(c, err)
			return
		}

		updated, err := orders.UpdateByID(ctx, c.Param("id"), update)
		if errors.Is(err, repository.ErrNotFound) {
			apierr.Respond(c, apierr.NewNotFound("Order"))
			return
		}
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /api/orders/:id — direct removal, no cascade.
func DeleteOrder(orders repository.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := orders.DeleteByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			apierr.Respond(c, apierr.NewNotFound("Order"))
			return
		}
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}

// GET /api/orders/user/:userId
func GetOrdersByUser(orders repository.Orders, users repository.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID := c.Param("userId")

		if _, err := users.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apierr.Respond(c, apierr.NewNotFound("User"))
				return
			}
			apierr.Respond(c, err)
			return
		}

		list, err := orders.FindByUser(ctx, userID)
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		if len(list) == 0 {
			apierr.Respond(c, &apierr.NotFoundError{Message: "No orders found for this user"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /api/orders/product/:productId
func GetOrdersByProduct(orders repository.Orders, products repository.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		productID := c.Param("productId")

		if _, err := products.FindByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apierr.Respond(c, apierr.NewNotFound("Product"))
				return
			}
			apierr.Respond(c, err)
			return
		}

		list, err := orders.FindByProduct(ctx, productID)
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		if len(list) == 0 {
			apierr.Respond(c, &apierr.NotFoundError{Message: "No orders found for this product"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
