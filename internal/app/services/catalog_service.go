package services

import (
	"context"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/pkg/apperrors"
)

// CatalogService exposes the relational course catalog
type CatalogService interface {
	ListCategories(ctx context.Context) ([]*models.Category, error)
}

type catalogServiceImpl struct {
	catalog CourseCatalog
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalog CourseCatalog) CatalogService {
	return &catalogServiceImpl{catalog: catalog}
}

func (s *catalogServiceImpl) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperrors.NewResourceNotFoundError("No categories found.")
	}
	return categories, nil
}
