package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/eduhub/internal/app/controllers"
	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/middleware"
)

// Controllers bundles the handlers mounted by SetupRouter
type Controllers struct {
	User       *controllers.UserController
	Discussion *controllers.DiscussionController
	Event      *controllers.EventController
	Article    *controllers.ArticleController
	Question   *controllers.QuestionController
	Dashboard  *controllers.DashboardController
	Health     *controllers.HealthController
}

var validate = middleware.Require

// SetupRouter configures all application routes. The admin group is guarded
// by a bearer token with the admin role only when authMiddleware is non-nil.
func SetupRouter(router *gin.Engine, c *Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/ping", c.Health.Ping)
	router.GET("/health", c.Health.Health)

	// --- Admin routes ---
	admin := router.Group("/api/admin")
	if authMiddleware != nil {
		admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
	}
	{
		admin.GET("/dashboard", c.Dashboard.Dashboard)
		admin.GET("/listCategories", c.Dashboard.ListCategories)

		admin.GET("/listUsers", c.User.ListUsers)
		admin.PUT("/updateUserRole", validate(updateRoleRule), c.User.UpdateUserRole)
		admin.DELETE("/deleteUser", validate(deleteUserRule), c.User.DeleteUser)

		admin.GET("/listDiscussions", c.Discussion.ListDiscussions)
		admin.DELETE("/deleteDiscussion", validate(discussionIDRule), c.Discussion.DeleteDiscussion)
		admin.GET("/listDiscussionComments", c.Discussion.ListComments)
		admin.DELETE("/deleteDiscussionComment", validate(commentIDRule), c.Discussion.DeleteComment)

		admin.GET("/listEvents", c.Event.ListEvents)
		admin.POST("/addEvent", validate(addEventRule), c.Event.AddEvent)
		admin.PUT("/updateEvent", validate(updateEventRule), c.Event.UpdateEvent)
		admin.DELETE("/deleteEvent", validate(eventIDRule), c.Event.DeleteEvent)
		admin.GET("/listEventComments", c.Event.ListComments)
		admin.DELETE("/deleteEventComment", validate(commentIDRule), c.Event.DeleteComment)

		admin.GET("/listArticles", c.Article.ListArticles)
		admin.POST("/addArticle", validate(addArticleRule), c.Article.AddArticle)
		admin.PUT("/updateArticle", validate(updateArticleRule), c.Article.UpdateArticle)
		admin.DELETE("/deleteArticle", validate(articleIDRule), c.Article.DeleteArticle)
	}

	// --- Lecturer routes ---
	lecturer := router.Group("/api/lecturer")
	{
		lecturer.POST("/listCourseUsers", validate(courseUsersRule), c.User.ListCourseUsers)
		lecturer.POST("/listCourseQuestions", validate(courseQuestionRule), c.Question.ListCourseQuestions)
		lecturer.POST("/answerQuestion", validate(answerRule), c.Question.AddAnswer)
	}

	// --- User routes ---
	user := router.Group("/user")
	{
		user.GET("/userProfile", validate(userProfileRule), c.User.UserProfile)
		user.POST("/addUser", validate(addUserRule), c.User.AddUser)
		user.PUT("/updateProfile", validate(updateProfileRule), c.User.UpdateProfile)

		user.POST("/addDiscussion", validate(addDiscussionRule), c.Discussion.AddDiscussion)
		user.PUT("/updateDiscussion", validate(updateDiscussionRule), c.Discussion.UpdateDiscussion)
		user.DELETE("/deleteDiscussion", validate(discussionIDRule), c.Discussion.DeleteDiscussion)
		user.POST("/viewDiscussion", validate(discussionIDRule), c.Discussion.ViewDiscussion)
		user.GET("/listDiscussions", c.Discussion.ListDiscussions)
		user.GET("/myDiscussions", validate(myDiscussionsRule), c.Discussion.MyDiscussions)
		user.POST("/addDiscussionComment", validate(addDisCommentRule), c.Discussion.AddComment)
		user.POST("/viewDiscussionComments", validate(disCommentsRule), c.Discussion.ViewComments)
		user.PUT("/updateDiscussionComment", validate(updateDisCommentRule), c.Discussion.UpdateComment)
		user.DELETE("/deleteDiscussionComment", validate(commentIDRule), c.Discussion.DeleteComment)

		user.GET("/listEvents", c.Event.ListEvents)
		user.POST("/viewEvent", validate(eventIDRule), c.Event.ViewEvent)
		user.POST("/addEventComment", validate(addEventCommentRule), c.Event.AddComment)
		user.POST("/viewEventComments", validate(eventCommentsRule), c.Event.ViewComments)
		user.DELETE("/deleteEventComment", validate(commentIDRule), c.Event.DeleteComment)

		user.GET("/listArticles", c.Article.ListArticles)
		user.POST("/viewArticle", validate(articleIDRule), c.Article.ViewArticle)
		user.PUT("/likeArticle", validate(articleIDRule), c.Article.LikeArticle)

		user.POST("/addCourseQuestion", validate(addQuestionRule), c.Question.AddQuestion)
		user.POST("/viewCourseQuestions", validate(courseQuestionRule), c.Question.ViewQuestions)
		user.POST("/addAnswer", validate(answerRule), c.Question.AddAnswer)
		user.DELETE("/deleteCourseQuestion", validate(questionIDRule), c.Question.DeleteQuestion)
	}
}
