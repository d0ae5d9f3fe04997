package dto

import (
	"github.com/yigit/eduhub/internal/app/models"
)

// Each endpoint answers with its own envelope. The shapes differ on purpose:
// the frontend reads payloads from these exact keys.

// MessageResponse is the body of 400 and 404 answers and of delete confirmations
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every 500 answer
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// NewMessageResponse creates a message-only body
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// NewErrorResponse creates a 500 body from the handler's fixed message and the cause
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

// UserEnvelope wraps a user under "user"
type UserEnvelope struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// DiscussionEnvelope wraps a discussion under "discussion"
type DiscussionEnvelope struct {
	Message    string             `json:"message"`
	Discussion *models.Discussion `json:"discussion"`
}

// DiscussionCommentEnvelope wraps a comment under the capitalised "Comment" key
type DiscussionCommentEnvelope struct {
	Message string                    `json:"message"`
	Comment *models.DiscussionComment `json:"Comment"`
}

// EventEnvelope wraps an event under "event"
type EventEnvelope struct {
	Message string        `json:"message"`
	Event   *models.Event `json:"event"`
}

// EventCommentEnvelope wraps a comment under the capitalised "Comment" key
type EventCommentEnvelope struct {
	Message string               `json:"message"`
	Comment *models.EventComment `json:"Comment"`
}

// ArticleEnvelope wraps an article under "article"
type ArticleEnvelope struct {
	Message string          `json:"message"`
	Article *models.Article `json:"article"`
}

// QuestionEnvelope wraps a course question under "question"
type QuestionEnvelope struct {
	Success  bool                   `json:"success"`
	Message  string                 `json:"message"`
	Question *models.CourseQuestion `json:"question"`
}

// QuestionListResponse is the answer of viewCourseQuestions, including when empty
type QuestionListResponse struct {
	Success   bool                     `json:"success"`
	Message   string                   `json:"message,omitempty"`
	Questions []*models.CourseQuestion `json:"questions"`
}
