package services

import (
	"context"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/pkg/apperrors"
)

// ArticleService defines the interface for article operations
type ArticleService interface {
	ListArticles(ctx context.Context) ([]*models.Article, error)
	ViewArticle(ctx context.Context, id string) (*models.Article, error)
	AddArticle(ctx context.Context, req *dto.ArticleRequest) (*models.Article, error)
	UpdateArticle(ctx context.Context, req *dto.ArticleRequest) (*models.Article, error)
	LikeArticle(ctx context.Context, id string) (*models.Article, error)
	DeleteArticle(ctx context.Context, id string) error
}

type articleServiceImpl struct {
	articles ArticleStore
}

// NewArticleService creates a new article service instance
func NewArticleService(articles ArticleStore) ArticleService {
	return &articleServiceImpl{articles: articles}
}

func (s *articleServiceImpl) ListArticles(ctx context.Context) ([]*models.Article, error) {
	articles, err := s.articles.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, apperrors.NewResourceNotFoundError("No articles found.")
	}
	return articles, nil
}

func (s *articleServiceImpl) ViewArticle(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "No article found.")
	}
	return article, nil
}

func (s *articleServiceImpl) AddArticle(ctx context.Context, req *dto.ArticleRequest) (*models.Article, error) {
	article := &models.Article{
		UID:         req.UID,
		Author:      req.Author,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		URL:         req.URL,
		Category:    req.Category,
	}
	if err := s.articles.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleServiceImpl) UpdateArticle(ctx context.Context, req *dto.ArticleRequest) (*models.Article, error) {
	article, err := s.articles.Update(ctx, req.ID, &models.Article{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		URL:         req.URL,
		Category:    req.Category,
	})
	if err != nil {
		return nil, notFound(err, "Article not found")
	}
	return article, nil
}

// LikeArticle increments the like counter
func (s *articleServiceImpl) LikeArticle(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.articles.Like(ctx, id)
	if err != nil {
		return nil, notFound(err, "Article not found")
	}
	return article, nil
}

func (s *articleServiceImpl) DeleteArticle(ctx context.Context, id string) error {
	return s.articles.Delete(ctx, id)
}
