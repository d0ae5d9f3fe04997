package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/pkg/logger"
)

// DiscussionRepository handles the discussions collection
type DiscussionRepository struct {
	discussions collection[models.Discussion]
}

// NewDiscussionRepository creates a new DiscussionRepository
func NewDiscussionRepository(db *mongo.Database) *DiscussionRepository {
	return &DiscussionRepository{discussions: newCollection[models.Discussion](db, models.CollectionDiscussions)}
}

// Create inserts a discussion with a zero comment count
func (r *DiscussionRepository) Create(ctx context.Context, discussion *models.Discussion) error {
	discussion.ID = primitive.NewObjectID()
	discussion.Comments = 0
	discussion.CreatedAt = now()
	discussion.UpdatedAt = discussion.CreatedAt
	return r.discussions.insert(ctx, discussion)
}

// FindAll returns every discussion in natural order
func (r *DiscussionRepository) FindAll(ctx context.Context) ([]*models.Discussion, error) {
	return r.discussions.find(ctx, bson.M{})
}

// FindByUID returns the discussions started by one user
func (r *DiscussionRepository) FindByUID(ctx context.Context, uid string) ([]*models.Discussion, error) {
	return r.discussions.find(ctx, bson.M{"uid": uid})
}

// FindByID returns one discussion
func (r *DiscussionRepository) FindByID(ctx context.Context, id string) (*models.Discussion, error) {
	return r.discussions.findByID(ctx, id)
}

// Update replaces title, description and category
func (r *DiscussionRepository) Update(ctx context.Context, id string, discussion *models.Discussion) (*models.Discussion, error) {
	return r.discussions.updateByID(ctx, id, bson.M{"$set": bson.M{
		"title":       discussion.Title,
		"description": discussion.Description,
		"category":    discussion.Category,
	}})
}

// SaveCommentCount writes back the recomputed comment count. A discussion whose
// stored count already matches is not written, so its updatedAt is left alone.
func (r *DiscussionRepository) SaveCommentCount(ctx context.Context, id primitive.ObjectID, count int64) error {
	filter, update := commentCountUpdate(id, count)
	_, err := r.discussions.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		logger.Error().Err(err).Str("discussionID", id.Hex()).Msg("Error saving discussion comment count")
	}
	return err
}

func commentCountUpdate(id primitive.ObjectID, count int64) (bson.M, bson.M) {
	filter := bson.M{"_id": id, "comments": bson.M{"$ne": count}}
	return filter, bson.M{"$set": bson.M{"comments": count, "updatedAt": now()}}
}

// Delete removes a discussion. Its comments are left in place.
func (r *DiscussionRepository) Delete(ctx context.Context, id string) error {
	return r.discussions.deleteByID(ctx, id)
}

// Count returns the number of discussions
func (r *DiscussionRepository) Count(ctx context.Context) (int64, error) {
	return r.discussions.count(ctx, bson.M{})
}
