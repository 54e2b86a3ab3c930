package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	UserRating  *float64           `bson:"userRating,omitempty" json:"userRating,omitempty"`
}

type ProductUpdate struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	UserRating  *float64 `json:"userRating"`
}
