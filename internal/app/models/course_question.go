package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Answer is embedded in CourseQuestion.Answers
type Answer struct {
	UserID    string    `json:"userId" bson:"userId"`
	UName     string    `json:"uname" bson:"uname"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// CourseQuestion is a question asked on a course chapter
type CourseQuestion struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"userId"`
	UName     string             `json:"uname" bson:"uname"`
	CourseID  string             `json:"courseId" bson:"courseId"`
	ChapterID string             `json:"chapterId" bson:"chapterId"`
	Text      string             `json:"text" bson:"text"`
	Answers   []Answer           `json:"answers" bson:"answers"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
