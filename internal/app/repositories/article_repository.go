package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yigit/eduhub/internal/app/models"
)

// ArticleRepository handles the articles collection
type ArticleRepository struct {
	articles collection[models.Article]
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{articles: newCollection[models.Article](db, models.CollectionArticles)}
}

func (r *ArticleRepository) Create(ctx context.Context, article *models.Article) error {
	article.ID = primitive.NewObjectID()
	article.Likes = 0
	article.Comments = 0
	article.CreatedAt = now()
	article.UpdatedAt = article.CreatedAt
	return r.articles.insert(ctx, article)
}

func (r *ArticleRepository) FindAll(ctx context.Context) ([]*models.Article, error) {
	return r.articles.find(ctx, bson.M{})
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*models.Article, error) {
	return r.articles.findByID(ctx, id)
}

// Update sets title, description and category. A blank image or url keeps the stored one.
func (r *ArticleRepository) Update(ctx context.Context, id string, article *models.Article) (*models.Article, error) {
	return r.articles.updateByID(ctx, id, bson.M{"$set": articleUpdate(article)})
}

func articleUpdate(article *models.Article) bson.M {
	set := bson.M{
		"title":       article.Title,
		"description": article.Description,
		"category":    article.Category,
	}
	setIfPresent(set, "image", article.Image)
	setIfPresent(set, "url", article.URL)
	return set
}

// Like increments the like counter atomically
func (r *ArticleRepository) Like(ctx context.Context, id string) (*models.Article, error) {
	return r.articles.updateByID(ctx, id, bson.M{"$inc": bson.M{"likes": 1}})
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	return r.articles.deleteByID(ctx, id)
}
