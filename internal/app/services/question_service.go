package services

import (
	"context"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/pkg/apperrors"
)

// QuestionService defines the interface for course Q&A operations
type QuestionService interface {
	AddQuestion(ctx context.Context, req *dto.CourseQuestionRequest) (*models.CourseQuestion, error)
	ListQuestions(ctx context.Context, courseID, chapterID string) ([]*models.CourseQuestion, error)
	ListCourseQuestions(ctx context.Context, courseID string) ([]*models.CourseQuestion, error)
	AddAnswer(ctx context.Context, req *dto.AnswerRequest) (*models.CourseQuestion, error)
	DeleteQuestion(ctx context.Context, id string) error
}

type questionServiceImpl struct {
	questions QuestionStore
}

// NewQuestionService creates a new question service instance
func NewQuestionService(questions QuestionStore) QuestionService {
	return &questionServiceImpl{questions: questions}
}

func (s *questionServiceImpl) AddQuestion(ctx context.Context, req *dto.CourseQuestionRequest) (*models.CourseQuestion, error) {
	question := &models.CourseQuestion{
		UserID:    req.UserID,
		UName:     req.UName,
		CourseID:  req.CourseID,
		ChapterID: req.ChapterID,
		Text:      req.Text,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// ListQuestions is the student view. An empty result is not an error.
func (s *questionServiceImpl) ListQuestions(ctx context.Context, courseID, chapterID string) ([]*models.CourseQuestion, error) {
	return s.questions.FindByCourse(ctx, courseID, chapterID)
}

// ListCourseQuestions is the lecturer view over a whole course
func (s *questionServiceImpl) ListCourseQuestions(ctx context.Context, courseID string) ([]*models.CourseQuestion, error) {
	questions, err := s.questions.FindByCourse(ctx, courseID, "")
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, apperrors.NewResourceNotFoundError("No questions found.")
	}
	return questions, nil
}

func (s *questionServiceImpl) AddAnswer(ctx context.Context, req *dto.AnswerRequest) (*models.CourseQuestion, error) {
	question, err := s.questions.AddAnswer(ctx, req.QuestionID, models.Answer{
		UserID: req.UserID,
		UName:  req.UName,
		Text:   req.Text,
	})
	if err != nil {
		return nil, notFound(err, "Question not found")
	}
	return question, nil
}

func (s *questionServiceImpl) DeleteQuestion(ctx context.Context, id string) error {
	return s.questions.Delete(ctx, id)
}
