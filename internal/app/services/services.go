package services

import (
	"github.com/yigit/eduhub/internal/app/repositories"
)

// Services groups every domain service built over the repositories
type Services struct {
	UserService       UserService
	DiscussionService DiscussionService
	EventService      EventService
	ArticleService    ArticleService
	QuestionService   QuestionService
	DashboardService  DashboardService
	CatalogService    CatalogService
}

// NewServices wires the services to their stores
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		UserService:       NewUserService(repos.UserRepository),
		DiscussionService: NewDiscussionService(repos.DiscussionRepository, repos.DiscussionCommentRepository),
		EventService:      NewEventService(repos.EventRepository, repos.EventCommentRepository),
		ArticleService:    NewArticleService(repos.ArticleRepository),
		QuestionService:   NewQuestionService(repos.CourseQuestionRepository),
		DashboardService: NewDashboardService(DashboardCounters{
			Discussions:        repos.DiscussionRepository,
			Users:              repos.UserRepository,
			Courses:            repos.CourseRepository,
			Events:             repos.EventRepository,
			DiscussionComments: repos.DiscussionCommentRepository,
			EventComments:      repos.EventCommentRepository,
		}),
		CatalogService: NewCatalogService(repos.CourseRepository),
	}
}
