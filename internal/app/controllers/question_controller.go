package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/app/services"
	"github.com/yigit/eduhub/internal/middleware"
)

// QuestionController handles course Q&A for students and lecturers
type QuestionController struct {
	questionService services.QuestionService
}

// NewQuestionController creates a new QuestionController
func NewQuestionController(questionService services.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// AddQuestion asks a question on a course chapter
// @Summary Add course question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.CourseQuestionRequest true "Question"
// @Success 201 {object} dto.QuestionEnvelope
// @Router /user/addCourseQuestion [post]
func (qc *QuestionController) AddQuestion(c *gin.Context) {
	var req dto.CourseQuestionRequest
	if !bindBody(c, &req) {
		return
	}

	question, err := qc.questionService.AddQuestion(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error adding question")
		return
	}
	c.JSON(http.StatusCreated, dto.QuestionEnvelope{Success: true, Message: "Question added successfully", Question: question})
}

// ViewQuestions lists a course's questions. It answers 200 even when there are none.
// @Summary View course questions
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.CourseQuestionsRequest true "Course and optional chapter"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/viewCourseQuestions [post]
func (qc *QuestionController) ViewQuestions(c *gin.Context) {
	var req dto.CourseQuestionsRequest
	if !bindBody(c, &req) {
		return
	}

	questions, err := qc.questionService.ListQuestions(c.Request.Context(), req.CourseID, req.ChapterID)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching questions")
		return
	}

	resp := dto.QuestionListResponse{Success: true, Questions: questions}
	if len(questions) == 0 {
		resp.Message = "No questions found"
	}
	c.JSON(http.StatusOK, resp)
}

// ListCourseQuestions is the lecturer listing for a whole course
// @Summary List course questions
// @Tags lecturer
// @Accept json
// @Produce json
// @Param request body dto.CourseQuestionsRequest true "Course id"
// @Success 200 {array} models.CourseQuestion
// @Failure 400 {object} dto.MessageResponse "courseId is required"
// @Failure 404 {object} dto.MessageResponse "No questions found."
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/lecturer/listCourseQuestions [post]
func (qc *QuestionController) ListCourseQuestions(c *gin.Context) {
	var req dto.CourseQuestionsRequest
	if !bindBody(c, &req) {
		return
	}

	questions, err := qc.questionService.ListCourseQuestions(c.Request.Context(), req.CourseID)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching questions")
		return
	}
	c.JSON(http.StatusOK, questions)
}

// AddAnswer answers a question. Students and lecturers share this handler.
// @Summary Answer question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.AnswerRequest true "Answer"
// @Success 200 {object} dto.QuestionEnvelope
// @Failure 400 {object} dto.MessageResponse "All required fields must be provided"
// @Failure 404 {object} dto.MessageResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/addAnswer [post]
// @Router /api/lecturer/answerQuestion [post]
func (qc *QuestionController) AddAnswer(c *gin.Context) {
	var req dto.AnswerRequest
	if !bindBody(c, &req) {
		return
	}

	question, err := qc.questionService.AddAnswer(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error adding answer")
		return
	}
	c.JSON(http.StatusOK, dto.QuestionEnvelope{Success: true, Message: "Answer added successfully", Question: question})
}

// DeleteQuestion removes a course question by id
// @Summary Delete course question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.IDRequest true "Question id"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse "Question id is required"
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/deleteCourseQuestion [delete]
func (qc *QuestionController) DeleteQuestion(c *gin.Context) {
	var req dto.IDRequest
	if !bindBody(c, &req) {
		return
	}

	if err := qc.questionService.DeleteQuestion(c.Request.Context(), req.ID); err != nil {
		middleware.HandleAPIError(c, err, "Error deleting question")
		return
	}
	deleted(c, "Question deleted successfully")
}
