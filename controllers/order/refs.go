package orderControllers

import (
	"context"
	"errors"

	"github.com/nadirkerem/mongodb-ecommerce-app/apierr"
	"github.com/nadirkerem/mongodb-ecommerce-app/models"
	"github.com/nadirkerem/mongodb-ecommerce-app/repository"
)

// checkReferences verifies that the user and every line-item product
// resolve to existing documents before an order is written. Checks run
// in order and the first missing reference fails the whole request.
// Empty inputs are skipped, so partial updates only pay for the fields
// they supply. The existence check and the subsequent write are separate
// operations; a concurrent delete in between is not prevented.
func checkReferences(ctx context.Context, users repository.Users, products repository.Products, userID string, items []models.OrderItemInput) error {
	if userID != "" {
		if _, err := users.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return &apierr.InvalidReferenceError{Entity: "User", ID: userID}
			}
			return err
		}
	}
	for _, item := range items {
		if _, err := products.FindByID(ctx, item.Product); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return &apierr.InvalidReferenceError{Entity: "Product", ID: item.Product}
			}
			return err
		}
	}
	return nil
}
