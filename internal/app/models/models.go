package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent  RoleType = "student"
	RoleLecturer RoleType = "lecturer"
	RoleAdmin    RoleType = "admin"
)

// Collection names in the document store
const (
	CollectionUsers              = "users"
	CollectionDiscussions        = "discussions"
	CollectionDiscussionComments = "discussionComments"
	CollectionEvents             = "events"
	CollectionEventComments      = "eventComments"
	CollectionArticles           = "articles"
	CollectionCourseQuestions    = "coursequestions"
)
