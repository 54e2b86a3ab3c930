package restaurantControllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nadirkerem/mongodb-ecommerce-app/apierr"
	"github.com/nadirkerem/mongodb-ecommerce-app/models"
	"github.com/nadirkerem/mongodb-ecommerce-app/repository"
)

// listLimit caps the unpaginated restaurant listing.
const listLimit = 25

// CreateRestaurantRequest relies on binding tags for the required-field
// checks; restaurants carry no range or length rules.
type CreateRestaurantRequest struct {
	Address      models.Address `json:"address" binding:"required"`
	Borough      string         `json:"borough" binding:"required"`
	Cuisine      string         `json:"cuisine" binding:"required"`
	Grades       []models.Grade `json:"grades" binding:"required"`
	Name         string         `json:"name" binding:"required"`
	RestaurantID string         `json:"restaurant_id" binding:"required"`
}

// GET /api/restaurants
func GetRestaurants(restaurants repository.Restaurants, boroughs repository.Boroughs, cuisines repository.Cuisines) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		list, err := restaurants.Find(ctx, listLimit)
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		if len(list) == 0 {
			apierr.Respond(c, &apierr.NotFoundError{Message: "No restaurants found"})
			return
		}

		expanded := make([]models.ExpandedRestaurant, 0, len(list))
		for i := range list {
			e, err := expandRestaurant(ctx, boroughs, cuisines, &list[i])
			if err != nil {
				apierr.Respond(c, err)
				return
			}
			expanded = append(expanded, *e)
		}
		c.JSON(http.StatusOK, expanded)
	}
}

// GET /api/restaurants/:id
func GetRestaurantByID(restaurants repository.Restaurants, boroughs repository.Boroughs, cuisines repository.Cuisines) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		restaurant, err := restaurants.FindByID(ctx, c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			apierr.Respond(c, apierr.NewNotFound("Restaurant"))
			return
		}
		if err != nil {
			apierr.Respond(c, err)
			return
		}

		expanded, err := expandRestaurant(ctx, boroughs, cuisines, restaurant)
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, expanded)
	}
}

func expandRestaurant(ctx context.Context, boroughs repository.Boroughs, cuisines repository.Cuisines, restaurant *models.Restaurant) (*models.ExpandedRestaurant, error) {
	expanded := &models.ExpandedRestaurant{
		ID:           restaurant.ID,
		Address:      restaurant.Address,
		Grades:       restaurant.Grades,
		Name:         restaurant.Name,
		RestaurantID: restaurant.RestaurantID,
	}

	borough, err := boroughs.FindByID(ctx, restaurant.Borough.Hex())
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	expanded.Borough = borough

	cuisine, err := cuisines.FindByID(ctx, restaurant.Cuisine.Hex())
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	expanded.Cuisine = cuisine
	return expanded, nil
}

// POST /api/restaurants
func CreateRestaurant(restaurants repository.Restaurants) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRestaurantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, &apierr.ValidationError{Message: err.Error()})
			return
		}

		boroughOID, err := primitive.ObjectIDFromHex(req.Borough)
		if err != nil {
			apierr.Respond(c, apierr.NewValidation("borough", "Invalid borough id"))
			return
		}
		cuisineOID, err := primitive.ObjectIDFromHex(req.Cuisine)
		if err != nil {
			apierr.Respond(c, apierr.NewValidation("cuisine", "Invalid cuisine id"))
			return
		}

		created, err := restaurants.Create(c.Request.Context(), &models.Restaurant{
			Address:      req.Address,
			Borough:      boroughOID,
			Cuisine:      cuisineOID,
			Grades:       req.Grades,
			Name:         req.Name,
			RestaurantID: req.RestaurantID,
		})
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// PUT /api/restaurants/:id
func UpdateRestaurant(restaurants repository.Restaurants) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update models.RestaurantUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			apierr.Respond(c, &apierr.ValidationError{Message: err.Error()})
			return
		}
		if update.Address == nil && update.Borough == nil && update.Cuisine == nil &&
			update.Grades == nil && update.Name == nil && update.RestaurantID == nil {
			apierr.Respond(c, apierr.NewValidation("fields", "At least one field must be provided"))
			return
		}

		updated, err := restaurants.UpdateByID(c.Request.Context(), c.Param("id"), update)
		if errors.Is(err, repository.ErrNotFound) {
			apierr.Respond(c, apierr.NewNotFound("Restaurant"))
			return
		}
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /api/restaurants/:id — no cascade relationships.
func DeleteRestaurant(restaurants repository.Restaurants) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := restaurants.DeleteByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			apierr.Respond(c, apierr.NewNotFound("Restaurant"))
			return
		}
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted successfully"})
	}
}
