package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yigit/eduhub/internal/app/models"
)

// CourseQuestionRepository handles the coursequestions collection
type CourseQuestionRepository struct {
	questions collection[models.CourseQuestion]
}

// NewCourseQuestionRepository creates a new CourseQuestionRepository
func NewCourseQuestionRepository(db *mongo.Database) *CourseQuestionRepository {
	return &CourseQuestionRepository{questions: newCollection[models.CourseQuestion](db, models.CollectionCourseQuestions)}
}

func (r *CourseQuestionRepository) Create(ctx context.Context, question *models.CourseQuestion) error {
	question.ID = primitive.NewObjectID()
	if question.Answers == nil {
		question.Answers = []models.Answer{}
	}
	question.CreatedAt = now()
	question.UpdatedAt = question.CreatedAt
	return r.questions.insert(ctx, question)
}

// FindByCourse returns the questions of a course, newest first, narrowed to one chapter when chapterID is set
func (r *CourseQuestionRepository) FindByCourse(ctx context.Context, courseID, chapterID string) ([]*models.CourseQuestion, error) {
	filter := bson.M{"courseId": courseID}
	if chapterID != "" {
		filter["chapterId"] = chapterID
	}
	return r.questions.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// AddAnswer pushes an answer onto the embedded answers array in one update
func (r *CourseQuestionRepository) AddAnswer(ctx context.Context, id string, answer models.Answer) (*models.CourseQuestion, error) {
	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = now()
	}
	return r.questions.updateByID(ctx, id, bson.M{"$push": bson.M{"answers": answer}})
}

func (r *CourseQuestionRepository) Delete(ctx context.Context, id string) error {
	return r.questions.deleteByID(ctx, id)
}
