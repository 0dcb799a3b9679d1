package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the ledger record of one completed external transaction.
// It is written exactly once per transaction id and never updated.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Amount        float64            `bson:"amount" json:"amount"` // major currency units
	Currency      string             `bson:"currency" json:"currency"`
	UserEmail     string             `bson:"userEmail" json:"userEmail"`
	OrderID       primitive.ObjectID `bson:"orderId" json:"orderId"`
	MealName      string             `bson:"mealName,omitempty" json:"mealName,omitempty"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Status        string             `bson:"status" json:"status"`
	PaidAt        time.Time          `bson:"paidAt" json:"paidAt"`
}
