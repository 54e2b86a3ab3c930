// Package repository wraps the MongoDB collections behind per-entity
// interfaces so handlers stay independent of the driver. Every
// implementation is constructed with the shared *mongo.Database handle.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nadirkerem/mongodb-ecommerce-app/models"
)

// ErrNotFound is returned when an identifier does not resolve to a
// document, including identifiers that are not valid ObjectIDs.
var ErrNotFound = errors.New("repository: document not found")

// ListOptions carries pagination and sorting for find-many queries.
// Sort fields are validated by the handlers before they get here.
type ListOptions struct {
	Limit     int64
	Skip      int64
	SortField string
	SortOrder string // "asc" or "desc"
}

func buildFindOptions(opts ListOptions) *options.FindOptions {
	fo := options.Find().SetLimit(opts.Limit).SetSkip(opts.Skip)
	if opts.SortField != "" {
		direction := 1
		if opts.SortOrder == "desc" {
			direction = -1
		}
		fo.SetSort(bson.D{{Key: opts.SortField, Value: direction}})
	}
	return fo
}

// parseID converts a hex identifier, mapping malformed input to
// ErrNotFound: an unparseable id cannot resolve to a document.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

type Users interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Find(ctx context.Context, opts ListOptions) ([]models.User, error)
	UpdateByID(ctx context.Context, id string, update models.UserUpdate) (*models.User, error)
	DeleteByID(ctx context.Context, id string) error
}

type Products interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Find(ctx context.Context, opts ListOptions) ([]models.Product, error)
	UpdateByID(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error)
	DeleteByID(ctx context.Context, id string) error
}

type Orders interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	Find(ctx context.Context, opts ListOptions) ([]models.Order, error)
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
	FindByProduct(ctx context.Context, productID string) ([]models.Order, error)
	UpdateByID(ctx context.Context, id string, update models.OrderUpdate) (*models.Order, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
	DeleteByProduct(ctx context.Context, productID string) (int64, error)
}

type Restaurants interface {
	Create(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error)
	FindByID(ctx context.Context, id string) (*models.Restaurant, error)
	Find(ctx context.Context, limit int64) ([]models.Restaurant, error)
	UpdateByID(ctx context.Context, id string, update models.RestaurantUpdate) (*models.Restaurant, error)
	DeleteByID(ctx context.Context, id string) error
}

// Boroughs and Cuisines are read-only lookup collections used when
// expanding restaurant references.
type Boroughs interface {
	FindByID(ctx context.Context, id string) (*models.Borough, error)
}

type Cuisines interface {
	FindByID(ctx context.Context, id string) (*models.Cuisine, error)
}
