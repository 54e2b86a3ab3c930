package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nadirkerem/mongodb-ecommerce-app/models"
)

type MongoRestaurants struct {
	collection *mongo.Collection
}

func NewRestaurants(db *mongo.Database) *MongoRestaurants {
	return &MongoRestaurants{collection: db.Collection("restaurants")}
}

func (r *MongoRestaurants) Create(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error) {
	result, err := r.collection.InsertOne(ctx, restaurant)
	if err != nil {
		return nil, err
	}
	var created models.Restaurant
	if err := r.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *MongoRestaurants) FindByID(ctx context.Context, id string) (*models.Restaurant, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var restaurant models.Restaurant
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *MongoRestaurants) Find(ctx context.Context, limit int64) ([]models.Restaurant, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var restaurants []models.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *MongoRestaurants) UpdateByID(ctx context.Context, id string, update models.RestaurantUpdate) (*models.Restaurant, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if update.Borough != nil {
		boroughOID, err := parseID(*update.Borough)
		if err != nil {
			return nil, err
		}
		set["borough"] = boroughOID
	}
	if update.Cuisine != nil {
		cuisineOID, err := parseID(*update.Cuisine)
		if err != nil {
			return nil, err
		}
		set["cuisine"] = cuisineOID
	}
	if update.Grades != nil {
		set["grades"] = *update.Grades
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.RestaurantID != nil {
		set["restaurant_id"] = *update.RestaurantID
	}

	var restaurant models.Restaurant
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *MongoRestaurants) DeleteByID(ctx context.Context, id string) error {
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

type MongoBoroughs struct {
	collection *mongo.Collection
}

func NewBoroughs(db *mongo.Database) *MongoBoroughs {
	return &MongoBoroughs{collection: db.Collection("boroughs")}
}

func (r *MongoBoroughs) FindByID(ctx context.Context, id string) (*models.Borough, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var borough models.Borough
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&borough)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &borough, nil
}

type MongoCuisines struct {
	collection *mongo.Collection
}

func NewCuisines(db *mongo.Database) *MongoCuisines {
	return &MongoCuisines{collection: db.Collection("cuisines")}
}

func (r *MongoCuisines) FindByID(ctx context.Context, id string) (*models.Cuisine, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var cuisine models.Cuisine
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&cuisine)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cuisine, nil
}
