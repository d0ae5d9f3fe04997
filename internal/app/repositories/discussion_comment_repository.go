package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yigit/eduhub/internal/app/models"
)

// DiscussionCommentRepository handles the discussionComments collection
type DiscussionCommentRepository struct {
	comments collection[models.DiscussionComment]
}

// NewDiscussionCommentRepository creates a new DiscussionCommentRepository
func NewDiscussionCommentRepository(db *mongo.Database) *DiscussionCommentRepository {
	return &DiscussionCommentRepository{comments: newCollection[models.DiscussionComment](db, models.CollectionDiscussionComments)}
}

func (r *DiscussionCommentRepository) Create(ctx context.Context, comment *models.DiscussionComment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = now()
	comment.UpdatedAt = comment.CreatedAt
	return r.comments.insert(ctx, comment)
}

func (r *DiscussionCommentRepository) FindAll(ctx context.Context) ([]*models.DiscussionComment, error) {
	return r.comments.find(ctx, bson.M{})
}

func (r *DiscussionCommentRepository) FindByDiscussion(ctx context.Context, disID string) ([]*models.DiscussionComment, error) {
	return r.comments.find(ctx, bson.M{"disid": disID})
}

func (r *DiscussionCommentRepository) CountByDiscussion(ctx context.Context, disID string) (int64, error) {
	return r.comments.count(ctx, bson.M{"disid": disID})
}

func (r *DiscussionCommentRepository) Update(ctx context.Context, id, description string) (*models.DiscussionComment, error) {
	return r.comments.updateByID(ctx, id, bson.M{"$set": bson.M{"description": description}})
}

func (r *DiscussionCommentRepository) Delete(ctx context.Context, id string) error {
	return r.comments.deleteByID(ctx, id)
}

func (r *DiscussionCommentRepository) Count(ctx context.Context) (int64, error) {
	return r.comments.count(ctx, bson.M{})
}
