package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// ParseOrderStatus maps a raw status string onto the enum.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch OrderStatus(status) {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(status), nil
	default:
		return "", errors.New("invalid order status")
	}
}

type OrderItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Products    []OrderItem        `bson:"products" json:"products"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	Status      OrderStatus        `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// OrderItemInput is a line item as supplied by a client, with the product
// reference still in hex form.
type OrderItemInput struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type OrderUpdate struct {
	User        *string           `json:"user"`
	Products    *[]OrderItemInput `json:"products"`
	TotalAmount *float64          `json:"totalAmount"`
	Status      *string           `json:"status"`
}

// ExpandedOrder is the point-read representation with the user and product
// references resolved into embedded documents. A dangling reference
// serializes as null.
type ExpandedOrder struct {
	ID          primitive.ObjectID  `json:"_id"`
	User        *User               `json:"user"`
	Products    []ExpandedOrderItem `json:"products"`
	TotalAmount float64             `json:"totalAmount"`
	Status      OrderStatus         `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
}

type ExpandedOrderItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}
