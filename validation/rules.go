// Package validation holds the per-entity field rules applied to request
// payloads before anything touches the database. Rules run in a fixed
// order and the first failure wins, so error messages are deterministic.
package validation

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/nadirkerem/mongodb-ecommerce-app/apierr"
	"github.com/nadirkerem/mongodb-ecommerce-app/models"
)

var validate = validator.New()

// length counts characters, not bytes, so multibyte names measure the
// same as their ASCII equivalents.
func length(s string) int {
	return utf8.RuneCountInString(s)
}

func isEmail(value string) bool {
	return validate.Var(value, "email") == nil
}

// ---- User ----

func userName(name string) error {
	if length(name) < 3 {
		return apierr.NewValidation("name", "Name must be at least 3 characters long")
	}
	if length(name) > 50 {
		return apierr.NewValidation("name", "Name must be at most 50 characters long")
	}
	return nil
}

func userEmail(email string) error {
	if !isEmail(email) {
		return apierr.NewValidation("email", "Invalid email format")
	}
	return nil
}

func userPassword(password string) error {
	if length(password) < 6 {
		return apierr.NewValidation("password", "Password must be at least 6 characters long")
	}
	return nil
}

func UserCreate(name, email, password string) error {
	if name == "" {
		return apierr.NewValidation("name", "Name is required")
	}
	if err := userName(name); err != nil {
		return err
	}
	if email == "" {
		return apierr.NewValidation("email", "Email is required")
	}
	if err := userEmail(email); err != nil {
		return err
	}
	if password == "" {
		return apierr.NewValidation("password", "Password is required")
	}
	return userPassword(password)
}

func UserUpdate(u models.UserUpdate) error {
	if u.Name == nil && u.Email == nil && u.Password == nil {
		return apierr.NewValidation("fields", "At least one field must be provided")
	}
	if u.Name != nil {
		if err := userName(*u.Name); err != nil {
			return err
		}
	}
	if u.Email != nil {
		if err := userEmail(*u.Email); err != nil {
			return err
		}
	}
	if u.Password != nil {
		if err := userPassword(*u.Password); err != nil {
			return err
		}
	}
	return nil
}

// ---- Product ----

func productName(name string) error {
	if length(name) < 3 {
		return apierr.NewValidation("name", "Product name must be at least 3 characters long")
	}
	if length(name) > 100 {
		return apierr.NewValidation("name", "Product name must be at most 100 characters long")
	}
	return nil
}

func productPrice(price float64) error {
	if price < 0 {
		return apierr.NewValidation("price", "Price must be a positive number")
	}
	return nil
}

func productDescription(description string) error {
	if length(description) < 10 {
		return apierr.NewValidation("description", "Description must be at least 10 characters long")
	}
	return nil
}

func productCategory(category string) error {
	if length(category) < 3 {
		return apierr.NewValidation("category", "Category must be at least 3 characters long")
	}
	if length(category) > 50 {
		return apierr.NewValidation("category", "Category must be at most 50 characters long")
	}
	return nil
}

func productRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return apierr.NewValidation("userRating", "Rating must be between 0 and 5")
	}
	return nil
}

func ProductCreate(name string, price *float64, description, category string, rating *float64) error {
	if name == "" {
		return apierr.NewValidation("name", "Product name is required")
	}
	if err := productName(name); err != nil {
		return err
	}
	if price == nil {
		return apierr.NewValidation("price", "Price is required")
	}
	if err := productPrice(*price); err != nil {
		return err
	}
	if description == "" {
		return apierr.NewValidation("description", "Description is required")
	}
	if err := productDescription(description); err != nil {
		return err
	}
	if category == "" {
		return apierr.NewValidation("category", "Category is required")
	}
	if err := productCategory(category); err != nil {
		return err
	}
	if rating != nil {
		return productRating(*rating)
	}
	return nil
}

func ProductUpdate(p models.ProductUpdate) error {
	if p.Name == nil && p.Price == nil && p.Description == nil && p.Category == nil && p.UserRating == nil {
		return apierr.NewValidation("fields", "At least one field must be provided")
	}
	if p.Name != nil {
		if err := productName(*p.Name); err != nil {
			return err
		}
	}
	if p.Price != nil {
		if err := productPrice(*p.Price); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if err := productDescription(*p.Description); err != nil {
			return err
		}
	}
	if p.Category != nil {
		if err := productCategory(*p.Category); err != nil {
			return err
		}
	}
	if p.UserRating != nil {
		if err := productRating(*p.UserRating); err != nil {
			return err
		}
	}
	return nil
}

// ---- Order ----

func orderStatus(status string) error {
	if _, err := models.ParseOrderStatus(status); err != nil {
		return apierr.NewValidation("status", "Invalid order status")
	}
	return nil
}

func OrderCreate(user string, products []models.OrderItemInput, totalAmount *float64, status string) error {
	if user == "" {
		return apierr.NewValidation("user", "User is required")
	}
	if len(products) == 0 {
		return apierr.NewValidation("products", "Products are required")
	}
	if totalAmount == nil {
		return apierr.NewValidation("totalAmount", "Total amount is required")
	}
	if status == "" {
		return apierr.NewValidation("status", "Status is required")
	}
	return orderStatus(status)
}

func OrderUpdate(o models.OrderUpdate) error {
	if o.User == nil && o.Products == nil && o.TotalAmount == nil && o.Status == nil {
		return apierr.NewValidation("fields", "At least one field must be provided")
	}
	if o.User != nil && *o.User == "" {
		return apierr.NewValidation("user", "User is required")
	}
	if o.Products != nil && len(*o.Products) == 0 {
		return apierr.NewValidation("products", "Products are required")
	}
	if o.Status != nil {
		return orderStatus(*o.Status)
	}
	return nil
}
