package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yigit/eduhub/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository              *UserRepository
	DiscussionRepository        *DiscussionRepository
	DiscussionCommentRepository *DiscussionCommentRepository
	EventRepository             *EventRepository
	EventCommentRepository      *EventCommentRepository
	ArticleRepository           *ArticleRepository
	CourseQuestionRepository    *CourseQuestionRepository
	CourseRepository            *CourseRepository
}

// NewRepositories initializes all repositories over the document database and
// the relational connector
func NewRepositories(database *mongo.Database, connector db.Connector) *Repositories {
	return &Repositories{
		UserRepository:              NewUserRepository(database),
		DiscussionRepository:        NewDiscussionRepository(database),
		DiscussionCommentRepository: NewDiscussionCommentRepository(database),
		EventRepository:             NewEventRepository(database),
		EventCommentRepository:      NewEventCommentRepository(database),
		ArticleRepository:           NewArticleRepository(database),
		CourseQuestionRepository:    NewCourseQuestionRepository(database),
		CourseRepository:            NewCourseRepository(connector),
	}
}
