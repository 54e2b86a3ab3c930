package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nadirkerem/mongodb-ecommerce-app/models"
)

type MongoOrders struct {
	collection *mongo.Collection
}

func NewOrders(db *mongo.Database) *MongoOrders {
	return &MongoOrders{collection: db.Collection("orders")}
}

func (r *MongoOrders) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	var created models.Order
	if err := r.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *MongoOrders) FindByID(ctx context.Context, id string) (*models.Order, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var order models.Order
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *MongoOrders) Find(ctx context.Context, opts ListOptions) ([]models.Order, error) {
	return r.findMany(ctx, bson.M{}, buildFindOptions(opts))
}

func (r *MongoOrders) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	return r.findMany(ctx, bson.M{"user": oid}, options.Find())
}

func (r *MongoOrders) FindByProduct(ctx context.Context, productID string) ([]models.Order, error) {
	oid, err := parseID(productID)
	if err != nil {
		return nil, err
	}
	return r.findMany(ctx, bson.M{"products.product": oid}, options.Find())
}

func (r *MongoOrders) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Order, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *MongoOrders) UpdateByID(ctx context.Context, id string, update models.OrderUpdate) (*models.Order, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if update.User != nil {
		userOID, err := parseID(*update.User)
		if err != nil {
			return nil, err
		}
		set["user"] = userOID
	}
	if update.Products != nil {
		items := make([]models.OrderItem, 0, len(*update.Products))
		for _, item := range *update.Products {
			productOID, err := parseID(item.Product)
			if err != nil {
				return nil, err
			}
			items = append(items, models.OrderItem{Product: productOID, Quantity: item.Quantity})
		}
		set["products"] = items
	}
	if update.TotalAmount != nil {
		set["totalAmount"] = *update.TotalAmount
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	var order models.Order
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *MongoOrders) DeleteByID(ctx context.Context, id string) error {
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

func (r *MongoOrders) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	oid, err := parseID(userID)
	if err != nil {
		return 0, err
	}
	return r.deleteMany(ctx, bson.M{"user": oid})
}

// DeleteByProduct removes every order containing a line item for the
// product. The whole order goes, not just the matching line item.
func (r *MongoOrders) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	oid, err := parseID(productID)
	if err != nil {
		return 0, err
	}
	return r.deleteMany(ctx, bson.M{"products.product": oid})
}

func (r *MongoOrders) deleteMany(ctx context.Context, filter bson.M) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
