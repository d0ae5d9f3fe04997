package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yigit/eduhub/internal/app/models"
)

// EventRepository handles the events collection
type EventRepository struct {
	events collection[models.Event]
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{events: newCollection[models.Event](db, models.CollectionEvents)}
}

// Create inserts an event, defaulting its status
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	event.ID = primitive.NewObjectID()
	if event.Status == "" {
		event.Status = models.DefaultEventStatus
	}
	event.CreatedAt = now()
	event.UpdatedAt = event.CreatedAt
	return r.events.insert(ctx, event)
}

func (r *EventRepository) FindAll(ctx context.Context) ([]*models.Event, error) {
	return r.events.find(ctx, bson.M{})
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	return r.events.findByID(ctx, id)
}

// Update sets the required fields. Optional fields left blank keep their stored values.
func (r *EventRepository) Update(ctx context.Context, id string, event *models.Event) (*models.Event, error) {
	return r.events.updateByID(ctx, id, bson.M{"$set": eventUpdate(event)})
}

func eventUpdate(event *models.Event) bson.M {
	set := bson.M{
		"title":       event.Title,
		"date":        event.Date,
		"location":    event.Location,
		"description": event.Description,
	}
	setIfPresent(set, "category", event.Category)
	setIfPresent(set, "type", event.Type)
	setIfPresent(set, "url", event.URL)
	setIfPresent(set, "image", event.Image)
	setIfPresent(set, "status", event.Status)
	return set
}

// Delete removes an event. Its comments are left in place.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	return r.events.deleteByID(ctx, id)
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	return r.events.count(ctx, bson.M{})
}
