package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article is a standalone post shown on the articles page
type Article struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UID         string             `json:"uid" bson:"uid"`
	Author      string             `json:"author" bson:"author"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Image       string             `json:"image" bson:"image"`
	URL         string             `json:"url" bson:"url"`
	Category    string             `json:"category" bson:"category"`
	Likes       int64              `json:"likes" bson:"likes"`
	Comments    int64              `json:"comments" bson:"comments"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
