package userControllers

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

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func parsePagination(c *gin.Context) (limit, skip int64) {
	limit = 20
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil {
		limit = v
	}
	if v, err := strconv.ParseInt(c.Query("skip"), 10, 64); err == nil {
		skip = v
	}
	return limit, skip
}

// GET /api/users
func GetUsers(users repository.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, skip := parsePagination(c)

		list, err := users.Find(c.Request.Context(), repository.ListOptions{Limit: limit, Skip: skip})
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		if len(list) == 0 {
			apierr.Respond(c, &apierr.NotFoundError{Message: "No users found"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /api/users/:id
func GetUserByID(users repository.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.FindByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			apierr.Respond(c, apierr.NewNotFound("User"))
			return
		}
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// POST /api/users
func CreateUser(users repository.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, &apierr.ValidationError{Message: err.Error()})
			return
		}
		if err := validation.UserCreate(req.Name, req.Email, req.Password); err != nil {
			apierr.Respond(c, err)
			return
		}

		ctx := c.Request.Context()
		if _, err := users.FindByEmail(ctx, req.Email); err == nil {
			apierr.Respond(c, apierr.NewValidation("email", "Email already exists"))
			return
		} else if !errors.Is(err, repository.ErrNotFound) {
			apierr.Respond(c, err)
			return
		}

		created, err := users.Create(ctx, &models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// PUT /api/users/:id
func UpdateUser(users repository.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var update models.UserUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			apierr.Respond(c, &apierr.ValidationError{Message: err.Error()})
			return
		}
		if err := validation.UserUpdate(update); err != nil {
			apierr.Respond(c, err)
			return
		}

		ctx := c.Request.Context()
		if update.Email != nil {
			existing, err := users.FindByEmail(ctx, *update.Email)
			if err == nil && existing.ID.Hex() != id {
				apierr.Respond(c, apierr.NewValidation("email", "Email already exists"))
				return
			}
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				apierr.Respond(c, err)
				return
			}
		}

		updated, err := users.UpdateByID(ctx, id, update)
		if errors.Is(err, repository.ErrNotFound) {
			apierr.Respond(c, apierr.NewNotFound("User"))
			return
		}
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /api/users/:id
//
// Deleting a user removes the user's orders first; see the cascade
// package for the two-step sequence.
func DeleteUser(coordinator *cascade.Coordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := coordinator.DeleteUser(c.Request.Context(), c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			apierr.Respond(c, apierr.NewNotFound("User"))
			return
		}
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
