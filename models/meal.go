package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meal documents are seeded by chefs through a separate flow; this service
// only reads them.
type Meal struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Price     float64            `bson:"price" json:"price"`
	ChefEmail string             `bson:"chefEmail,omitempty" json:"chefEmail,omitempty"`
	ChefName  string             `bson:"chefName,omitempty" json:"chefName,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Rating    float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
