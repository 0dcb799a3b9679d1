package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Favorite struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MealID    primitive.ObjectID `bson:"mealId" json:"mealId"`
	MealName  string             `bson:"mealName,omitempty" json:"mealName,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Price     float64            `bson:"price,omitempty" json:"price,omitempty"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
