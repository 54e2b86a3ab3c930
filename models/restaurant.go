package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	Building string    `bson:"building" json:"building" binding:"required"`
	Coord    []float64 `bson:"coord" json:"coord" binding:"required"`
	Street   string    `bson:"street" json:"street" binding:"required"`
	Zipcode  string    `bson:"zipcode" json:"zipcode" binding:"required"`
}

type Grade struct {
	Date  time.Time `bson:"date" json:"date" binding:"required"`
	Grade string    `bson:"grade" json:"grade" binding:"required"`
	Score int       `bson:"score" json:"score" binding:"required"`
}

type Restaurant struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Address      Address            `bson:"address" json:"address"`
	Borough      primitive.ObjectID `bson:"borough" json:"borough"`
	Cuisine      primitive.ObjectID `bson:"cuisine" json:"cuisine"`
	Grades       []Grade            `bson:"grades" json:"grades"`
	Name         string             `bson:"name" json:"name"`
	RestaurantID string             `bson:"restaurant_id" json:"restaurant_id"`
}

type Borough struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name string             `bson:"name" json:"name"`
}

type Cuisine struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name string             `bson:"name" json:"name"`
}

type RestaurantUpdate struct {
	Address      *Address `json:"address"`
	Borough      *string  `json:"borough"`
	Cuisine      *string  `json:"cuisine"`
	Grades       *[]Grade `json:"grades"`
	Name         *string  `json:"name"`
	RestaurantID *string  `json:"restaurant_id"`
}

// ExpandedRestaurant resolves the borough and cuisine references for reads.
// A dangling reference serializes as null.
type ExpandedRestaurant struct {
	ID           primitive.ObjectID `json:"_id"`
	Address      Address            `json:"address"`
	Borough      *Borough           `json:"borough"`
	Cuisine      *Cuisine           `json:"cuisine"`
	Grades       []Grade            `json:"grades"`
	Name         string             `json:"name"`
	RestaurantID string             `json:"restaurant_id"`
}
