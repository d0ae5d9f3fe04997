package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/app/repositories"
	"github.com/yigit/eduhub/internal/app/services/mocks"
	"github.com/yigit/eduhub/internal/pkg/apperrors"
)

func TestListQuestionsEmptyIsNotAnError(t *testing.T) {
	questions := new(mocks.QuestionStore)
	questions.On("FindByCourse", mock.Anything, "c1", "ch1").Return([]*models.CourseQuestion{}, nil)

	result, err := NewQuestionService(questions).ListQuestions(context.Background(), "c1", "ch1")

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestListCourseQuestionsEmpty(t *testing.T) {
	questions := new(mocks.QuestionStore)
	questions.On("FindByCourse", mock.Anything, "c1", "").Return([]*models.CourseQuestion{}, nil)

	_, err := NewQuestionService(questions).ListCourseQuestions(context.Background(), "c1")

	assert.Equal(t, "No questions found.", apperrors.MessageOf(err, ""))
}

func TestAddAnswerUnknownQuestion(t *testing.T) {
	questions := new(mocks.QuestionStore)
	questions.On("AddAnswer", mock.Anything, "64f0c2a1e4b0a1b2c3d4e5f6", models.Answer{UserID: "l1", UName: "Lee", Text: "Use a map"}).
		Return(nil, repositories.ErrNotFound)

	_, err := NewQuestionService(questions).AddAnswer(context.Background(), &dto.AnswerRequest{
		QuestionID: "64f0c2a1e4b0a1b2c3d4e5f6", UserID: "l1", UName: "Lee", Text: "Use a map",
	})

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "Question not found", apperrors.MessageOf(err, ""))
}
