package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order lifecycle statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusAccepted  = "accepted"
	OrderStatusCancelled = "cancelled"
	OrderStatusDelivered = "delivered"
)

// Payment statuses carried on an order. "payment" means the order was
// accepted by the chef and is now payable.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusPayment   = "payment"
	PaymentStatusPaid      = "paid"
	PaymentStatusCancelled = "cancelled"
)

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MealID        primitive.ObjectID `bson:"mealId" json:"mealId"`
	MealName      string             `bson:"mealName" json:"mealName"`
	Price         float64            `bson:"price" json:"price"`
	Quantity      int                `bson:"quantity,omitempty" json:"quantity,omitempty"`
	UserEmail     string             `bson:"userEmail" json:"userEmail"`
	ChefEmail     string             `bson:"chefEmail,omitempty" json:"chefEmail,omitempty"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	OrderStatus   string             `bson:"orderStatus" json:"orderStatus"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"`
	OrderTime     time.Time          `bson:"orderTime" json:"orderTime"`
}
