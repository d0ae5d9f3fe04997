package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultEventStatus is stored when an event is created without a status
const DefaultEventStatus = "false"

// Event is a community event
type Event struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UID         string             `json:"uid" bson:"uid"`
	Title       string             `json:"title" bson:"title"`
	Date        string             `json:"date" bson:"date"`
	Location    string             `json:"location" bson:"location"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category" bson:"category"`
	Type        string             `json:"type" bson:"type"`
	URL         string             `json:"url" bson:"url"`
	Image       string             `json:"image" bson:"image"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// EventWithComments is the list view of an event. Comments is computed per
// request and never written back to the event document.
type EventWithComments struct {
	Event
	Comments int64 `json:"comments"`
}

// EventComment belongs to the event whose hex id is EID
type EventComment struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	EID       string             `json:"eid" bson:"eid"`
	UID       string             `json:"uid" bson:"uid"`
	Name      string             `json:"name" bson:"name"`
	Text      string             `json:"text" bson:"text"`
	Email     string             `json:"email" bson:"email"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
