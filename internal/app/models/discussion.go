package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Discussion is a course discussion thread. Comments mirrors the number of
// DiscussionComment documents and is refreshed whenever discussions are listed.
type Discussion struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UID         string             `json:"uid" bson:"uid"`
	Name        string             `json:"name" bson:"name"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category" bson:"category"`
	Email       string             `json:"email" bson:"email"`
	Comments    int64              `json:"comments" bson:"comments"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// DiscussionComment belongs to the discussion whose hex id is DisID
type DiscussionComment struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	DisID       string             `json:"disid" bson:"disid"`
	UID         string             `json:"uid" bson:"uid"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Email       string             `json:"email" bson:"email"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
