package models

// Category is a row of the relational category table
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// DashboardStats is the admin dashboard payload. CommentCount is the sum of
// DisCommentCount and EventCommentCount.
type DashboardStats struct {
	DiscussionCount   int64 `json:"discussionCount"`
	UserCount         int64 `json:"userCount"`
	CourseCount       int64 `json:"courseCount"`
	EventCount        int64 `json:"eventCount"`
	CommentCount      int64 `json:"commentCount"`
	DisCommentCount   int64 `json:"disCommentCount"`
	EventCommentCount int64 `json:"eventCommentCount"`
}
