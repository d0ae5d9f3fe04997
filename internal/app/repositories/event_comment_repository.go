package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yigit/eduhub/internal/app/models"
)

// EventCommentRepository handles the eventComments collection
type EventCommentRepository struct {
	comments collection[models.EventComment]
}

// NewEventCommentRepository creates a new EventCommentRepository
func NewEventCommentRepository(db *mongo.Database) *EventCommentRepository {
	return &EventCommentRepository{comments: newCollection[models.EventComment](db, models.CollectionEventComments)}
}

func (r *EventCommentRepository) Create(ctx context.Context, comment *models.EventComment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = now()
	comment.UpdatedAt = comment.CreatedAt
	return r.comments.insert(ctx, comment)
}

func (r *EventCommentRepository) FindAll(ctx context.Context) ([]*models.EventComment, error) {
	return r.comments.find(ctx, bson.M{})
}

func (r *EventCommentRepository) FindByEvent(ctx context.Context, eventID string) ([]*models.EventComment, error) {
	return r.comments.find(ctx, bson.M{"eid": eventID})
}

func (r *EventCommentRepository) CountByEvent(ctx context.Context, eventID string) (int64, error) {
	return r.comments.count(ctx, bson.M{"eid": eventID})
}

func (r *EventCommentRepository) Delete(ctx context.Context, id string) error {
	return r.comments.deleteByID(ctx, id)
}

func (r *EventCommentRepository) Count(ctx context.Context) (int64, error) {
	return r.comments.count(ctx, bson.M{})
}
