package dto

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/yigit/eduhub/internal/app/models"
)

// Required fields of every request are enforced by the route validation rules,
// so the structs below carry no binding tags.

// IDRequest carries a document id for view and delete routes
type IDRequest struct {
	ID string `json:"id"`
}

// AddUserRequest registers a user after external sign-up
type AddUserRequest struct {
	UID     string          `json:"uid"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Image   string          `json:"image"`
	Role    models.RoleType `json:"role"`
	Address bson.M          `json:"address"`
}

// UpdateProfileRequest updates the caller's profile; blank fields keep their stored value
type UpdateProfileRequest struct {
	UID     string `json:"uid"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Image   string `json:"image"`
	Address bson.M `json:"address"`
}

// UpdateUserRoleRequest changes a user's role from the admin panel
type UpdateUserRoleRequest struct {
	ID   string          `json:"id"`
	Role models.RoleType `json:"role"`
}

// CourseUsersRequest lists users enrolled in a course by uid
type CourseUsersRequest struct {
	UserIDs []string `json:"userIds"`
}

// DiscussionRequest creates or updates a discussion
type DiscussionRequest struct {
	ID          string `json:"id"`
	UID         string `json:"uid"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Email       string `json:"email"`
}

// DiscussionCommentRequest creates or updates a discussion comment
type DiscussionCommentRequest struct {
	ID          string `json:"id"`
	DisID       string `json:"disid"`
	UID         string `json:"uid"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Email       string `json:"email"`
}

// EventRequest creates or updates an event
type EventRequest struct {
	ID          string `json:"id"`
	UID         string `json:"uid"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	Status      string `json:"status"`
}

// EventCommentRequest creates an event comment
type EventCommentRequest struct {
	EID   string `json:"eid"`
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Text  string `json:"text"`
	Email string `json:"email"`
}

// EventCommentsRequest lists the comments of one event
type EventCommentsRequest struct {
	EID string `json:"eid"`
}

// DiscussionCommentsRequest lists the comments of one discussion
type DiscussionCommentsRequest struct {
	DisID string `json:"disid"`
}

// ArticleRequest creates or updates an article
type ArticleRequest struct {
	ID          string `json:"id"`
	UID         string `json:"uid"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	URL         string `json:"url"`
	Category    string `json:"category"`
}

// CourseQuestionRequest asks a question on a course chapter
type CourseQuestionRequest struct {
	UserID    string `json:"userId"`
	UName     string `json:"uname"`
	CourseID  string `json:"courseId"`
	ChapterID string `json:"chapterId"`
	Text      string `json:"text"`
}

// CourseQuestionsRequest filters questions by course and, optionally, chapter
type CourseQuestionsRequest struct {
	CourseID  string `json:"courseId"`
	ChapterID string `json:"chapterId"`
}

// AnswerRequest appends an answer to a question
type AnswerRequest struct {
	QuestionID string `json:"questionId"`
	UserID     string `json:"userId"`
	UName      string `json:"uname"`
	Text       string `json:"text"`
}
