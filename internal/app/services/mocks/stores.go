// Package mocks provides testify mocks of the service store interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/eduhub/internal/app/models"
)

// Counter mocks a single Count call
type Counter struct {
	mock.Mock
}

func (m *Counter) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// UserStore mocks services.UserStore
type UserStore struct {
	mock.Mock
}

func (m *UserStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserStore) FindAll(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*models.User)
	return users, args.Error(1)
}

func (m *UserStore) FindByUID(ctx context.Context, uid string) (*models.User, error) {
	args := m.Called(ctx, uid)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserStore) FindExisting(ctx context.Context, uid, email string) (*models.User, error) {
	args := m.Called(ctx, uid, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserStore) FindProfile(ctx context.Context, uid, email string) (*models.UserProfile, error) {
	args := m.Called(ctx, uid, email)
	profile, _ := args.Get(0).(*models.UserProfile)
	return profile, args.Error(1)
}

func (m *UserStore) FindByUIDs(ctx context.Context, uids []string) ([]*models.CourseUser, error) {
	args := m.Called(ctx, uids)
	users, _ := args.Get(0).([]*models.CourseUser)
	return users, args.Error(1)
}

func (m *UserStore) UpdateProfile(ctx context.Context, uid string, profile *models.User) (*models.User, error) {
	args := m.Called(ctx, uid, profile)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserStore) UpdateRole(ctx context.Context, id string, role models.RoleType) (*models.User, error) {
	args := m.Called(ctx, id, role)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// DiscussionStore mocks services.DiscussionStore
type DiscussionStore struct {
	mock.Mock
}

func (m *DiscussionStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DiscussionStore) Create(ctx context.Context, discussion *models.Discussion) error {
	return m.Called(ctx, discussion).Error(0)
}

func (m *DiscussionStore) FindAll(ctx context.Context) ([]*models.Discussion, error) {
	args := m.Called(ctx)
	discussions, _ := args.Get(0).([]*models.Discussion)
	return discussions, args.Error(1)
}

func (m *DiscussionStore) FindByUID(ctx context.Context, uid string) ([]*models.Discussion, error) {
	args := m.Called(ctx, uid)
	discussions, _ := args.Get(0).([]*models.Discussion)
	return discussions, args.Error(1)
}

func (m *DiscussionStore) FindByID(ctx context.Context, id string) (*models.Discussion, error) {
	args := m.Called(ctx, id)
	discussion, _ := args.Get(0).(*models.Discussion)
	return discussion, args.Error(1)
}

func (m *DiscussionStore) Update(ctx context.Context, id string, discussion *models.Discussion) (*models.Discussion, error) {
	args := m.Called(ctx, id, discussion)
	updated, _ := args.Get(0).(*models.Discussion)
	return updated, args.Error(1)
}

func (m *DiscussionStore) SaveCommentCount(ctx context.Context, id primitive.ObjectID, count int64) error {
	return m.Called(ctx, id, count).Error(0)
}

func (m *DiscussionStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// DiscussionCommentStore mocks services.DiscussionCommentStore
type DiscussionCommentStore struct {
	mock.Mock
}

func (m *DiscussionCommentStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DiscussionCommentStore) Create(ctx context.Context, comment *models.DiscussionComment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *DiscussionCommentStore) FindAll(ctx context.Context) ([]*models.DiscussionComment, error) {
	args := m.Called(ctx)
	comments, _ := args.Get(0).([]*models.DiscussionComment)
	return comments, args.Error(1)
}

func (m *DiscussionCommentStore) FindByDiscussion(ctx context.Context, disID string) ([]*models.DiscussionComment, error) {
	args := m.Called(ctx, disID)
	comments, _ := args.Get(0).([]*models.DiscussionComment)
	return comments, args.Error(1)
}

func (m *DiscussionCommentStore) CountByDiscussion(ctx context.Context, disID string) (int64, error) {
	args := m.Called(ctx, disID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DiscussionCommentStore) Update(ctx context.Context, id, description string) (*models.DiscussionComment, error) {
	args := m.Called(ctx, id, description)
	comment, _ := args.Get(0).(*models.DiscussionComment)
	return comment, args.Error(1)
}

func (m *DiscussionCommentStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// EventStore mocks services.EventStore
type EventStore struct {
	mock.Mock
}

func (m *EventStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *EventStore) Create(ctx context.Context, event *models.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *EventStore) FindAll(ctx context.Context) ([]*models.Event, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]*models.Event)
	return events, args.Error(1)
}

func (m *EventStore) FindByID(ctx context.Context, id string) (*models.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*models.Event)
	return event, args.Error(1)
}

func (m *EventStore) Update(ctx context.Context, id string, event *models.Event) (*models.Event, error) {
	args := m.Called(ctx, id, event)
	updated, _ := args.Get(0).(*models.Event)
	return updated, args.Error(1)
}

func (m *EventStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// EventCommentStore mocks services.EventCommentStore
type EventCommentStore struct {
	mock.Mock
}

func (m *EventCommentStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *EventCommentStore) Create(ctx context.Context, comment *models.EventComment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *EventCommentStore) FindAll(ctx context.Context) ([]*models.EventComment, error) {
	args := m.Called(ctx)
	comments, _ := args.Get(0).([]*models.EventComment)
	return comments, args.Error(1)
}

func (m *EventCommentStore) FindByEvent(ctx context.Context, eventID string) ([]*models.EventComment, error) {
	args := m.Called(ctx, eventID)
	comments, _ := args.Get(0).([]*models.EventComment)
	return comments, args.Error(1)
}

func (m *EventCommentStore) CountByEvent(ctx context.Context, eventID string) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *EventCommentStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// ArticleStore mocks services.ArticleStore
type ArticleStore struct {
	mock.Mock
}

func (m *ArticleStore) Create(ctx context.Context, article *models.Article) error {
	return m.Called(ctx, article).Error(0)
}

func (m *ArticleStore) FindAll(ctx context.Context) ([]*models.Article, error) {
	args := m.Called(ctx)
	articles, _ := args.Get(0).([]*models.Article)
	return articles, args.Error(1)
}

func (m *ArticleStore) FindByID(ctx context.Context, id string) (*models.Article, error) {
	args := m.Called(ctx, id)
	article, _ := args.Get(0).(*models.Article)
	return article, args.Error(1)
}

func (m *ArticleStore) Update(ctx context.Context, id string, article *models.Article) (*models.Article, error) {
	args := m.Called(ctx, id, article)
	updated, _ := args.Get(0).(*models.Article)
	return updated, args.Error(1)
}

func (m *ArticleStore) Like(ctx context.Context, id string) (*models.Article, error) {
	args := m.Called(ctx, id)
	article, _ := args.Get(0).(*models.Article)
	return article, args.Error(1)
}

func (m *ArticleStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// QuestionStore mocks services.QuestionStore
type QuestionStore struct {
	mock.Mock
}

func (m *QuestionStore) Create(ctx context.Context, question *models.CourseQuestion) error {
	return m.Called(ctx, question).Error(0)
}

func (m *QuestionStore) FindByCourse(ctx context.Context, courseID, chapterID string) ([]*models.CourseQuestion, error) {
	args := m.Called(ctx, courseID, chapterID)
	questions, _ := args.Get(0).([]*models.CourseQuestion)
	return questions, args.Error(1)
}

func (m *QuestionStore) AddAnswer(ctx context.Context, id string, answer models.Answer) (*models.CourseQuestion, error) {
	args := m.Called(ctx, id, answer)
	question, _ := args.Get(0).(*models.CourseQuestion)
	return question, args.Error(1)
}

func (m *QuestionStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// CourseCatalog mocks services.CourseCatalog
type CourseCatalog struct {
	mock.Mock
}

func (m *CourseCatalog) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CourseCatalog) ListCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]*models.Category)
	return categories, args.Error(1)
}
