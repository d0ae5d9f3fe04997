package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/app/repositories"
	"github.com/yigit/eduhub/internal/pkg/apperrors"
)

// Store interfaces consumed by the services. The repositories package provides
// the production implementations; tests use the mocks package.

// Counter counts the documents or rows of one store
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type UserStore interface {
	Counter
	Create(ctx context.Context, user *models.User) error
	FindAll(ctx context.Context) ([]*models.User, error)
	FindByUID(ctx context.Context, uid string) (*models.User, error)
	FindExisting(ctx context.Context, uid, email string) (*models.User, error)
	FindProfile(ctx context.Context, uid, email string) (*models.UserProfile, error)
	FindByUIDs(ctx context.Context, uids []string) ([]*models.CourseUser, error)
	UpdateProfile(ctx context.Context, uid string, profile *models.User) (*models.User, error)
	UpdateRole(ctx context.Context, id string, role models.RoleType) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type DiscussionStore interface {
	Counter
	Create(ctx context.Context, discussion *models.Discussion) error
	FindAll(ctx context.Context) ([]*models.Discussion, error)
	FindByUID(ctx context.Context, uid string) ([]*models.Discussion, error)
	FindByID(ctx context.Context, id string) (*models.Discussion, error)
	Update(ctx context.Context, id string, discussion *models.Discussion) (*models.Discussion, error)
	SaveCommentCount(ctx context.Context, id primitive.ObjectID, count int64) error
	Delete(ctx context.Context, id string) error
}

type DiscussionCommentStore interface {
	Counter
	Create(ctx context.Context, comment *models.DiscussionComment) error
	FindAll(ctx context.Context) ([]*models.DiscussionComment, error)
	FindByDiscussion(ctx context.Context, disID string) ([]*models.DiscussionComment, error)
	CountByDiscussion(ctx context.Context, disID string) (int64, error)
	Update(ctx context.Context, id, description string) (*models.DiscussionComment, error)
	Delete(ctx context.Context, id string) error
}

type EventStore interface {
	Counter
	Create(ctx context.Context, event *models.Event) error
	FindAll(ctx context.Context) ([]*models.Event, error)
	FindByID(ctx context.Context, id string) (*models.Event, error)
	Update(ctx context.Context, id string, event *models.Event) (*models.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventCommentStore interface {
	Counter
	Create(ctx context.Context, comment *models.EventComment) error
	FindAll(ctx context.Context) ([]*models.EventComment, error)
	FindByEvent(ctx context.Context, eventID string) ([]*models.EventComment, error)
	CountByEvent(ctx context.Context, eventID string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type ArticleStore interface {
	Create(ctx context.Context, article *models.Article) error
	FindAll(ctx context.Context) ([]*models.Article, error)
	FindByID(ctx context.Context, id string) (*models.Article, error)
	Update(ctx context.Context, id string, article *models.Article) (*models.Article, error)
	Like(ctx context.Context, id string) (*models.Article, error)
	Delete(ctx context.Context, id string) error
}

type QuestionStore interface {
	Create(ctx context.Context, question *models.CourseQuestion) error
	FindByCourse(ctx context.Context, courseID, chapterID string) ([]*models.CourseQuestion, error)
	AddAnswer(ctx context.Context, id string, answer models.Answer) (*models.CourseQuestion, error)
	Delete(ctx context.Context, id string) error
}

// CourseCatalog is the relational side: course count and categories
type CourseCatalog interface {
	Counter
	ListCategories(ctx context.Context) ([]*models.Category, error)
}

// notFound turns a repository miss into a client-facing 404 with message.
// Any other error is returned untouched so its text reaches the 500 body.
func notFound(err error, message string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NewResourceNotFoundError(message)
	}
	return err
}
