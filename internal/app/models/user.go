package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a platform member identified by the external auth uid
type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UID       string             `json:"uid" bson:"uid"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Phone     string             `json:"phone" bson:"phone"`
	Image     string             `json:"image" bson:"image"`
	Role      RoleType           `json:"role" bson:"role"`
	Address   bson.M             `json:"address,omitempty" bson:"address,omitempty"` // free-form
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// UserProfile is the field selection returned by the profile lookup
type UserProfile struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	UID     string             `json:"uid" bson:"uid"`
	Name    string             `json:"name" bson:"name"`
	Email   string             `json:"email" bson:"email"`
	Phone   string             `json:"phone" bson:"phone"`
	Image   string             `json:"image" bson:"image"`
	Role    RoleType           `json:"role" bson:"role"`
	Address bson.M             `json:"address,omitempty" bson:"address,omitempty"`
}

// CourseUser is the projection a lecturer sees for enrolled users; _id is excluded
type CourseUser struct {
	UID   string   `json:"uid" bson:"uid"`
	Name  string   `json:"name" bson:"name"`
	Email string   `json:"email" bson:"email"`
	Image string   `json:"image" bson:"image"`
	Role  RoleType `json:"role" bson:"role"`
}
