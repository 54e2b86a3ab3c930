package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nadirkerem/mongodb-ecommerce-app/models"
)

type MongoProducts struct {
	collection *mongo.Collection
}

func NewProducts(db *mongo.Database) *MongoProducts {
	return &MongoProducts{collection: db.Collection("products")}
}

func (r *MongoProducts) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}
	var created models.Product
	if err := r.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *MongoProducts) FindByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var product models.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *MongoProducts) Find(ctx context.Context, opts ListOptions) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, buildFindOptions(opts))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProducts) UpdateByID(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.UserRating != nil {
		set["userRating"] = *update.UserRating
	}

	var product models.Product
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *MongoProducts) DeleteByID(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
