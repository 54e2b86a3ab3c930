// Package cascade removes the orders that reference a user or product
// before removing the entity itself. The two deletions are separate store
// operations with no transaction around them: a failure in between leaves
// the entity in place with its orders already gone.
package cascade

import (
	"context"

	"github.com/nadirkerem/mongodb-ecommerce-app/repository"
)

type Coordinator struct {
	users    repository.Users
	products repository.Products
	orders   repository.Orders
}

func NewCoordinator(users repository.Users, products repository.Products, orders repository.Orders) *Coordinator {
	return &Coordinator{users: users, products: products, orders: orders}
}

// DeleteUser removes every order whose user field equals id, then the
// user document. Returns repository.ErrNotFound when the user does not
// exist; no orders are touched in that case.
func (c *Coordinator) DeleteUser(ctx context.Context, id string) error {
	if _, err := c.users.FindByID(ctx, id); err != nil {
		return err
	}
	if _, err := c.orders.DeleteByUser(ctx, id); err != nil {
		return err
	}
	return c.users.DeleteByID(ctx, id)
}

// DeleteProduct removes every order containing a line item for id (the
// whole order, not the line item), then the product document.
func (c *Coordinator) DeleteProduct(ctx context.Context, id string) error {
	if _, err := c.products.FindByID(ctx, id); err != nil {
		return err
	}
	if _, err := c.orders.DeleteByProduct(ctx, id); err != nil {
		return err
	}
	return c.products.DeleteByID(ctx, id)
}
