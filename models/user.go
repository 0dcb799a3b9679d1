package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser = "user"
	RoleChef = "chef"

	UserStatusActive = "active"
)

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Photo       string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role        string             `bson:"role" json:"role"`
	UserStatus  string             `bson:"userStatus" json:"userStatus"`
	RoleRequest string             `bson:"roleRequest,omitempty" json:"roleRequest,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
