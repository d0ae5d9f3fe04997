package routes

import (
	"github.com/yigit/eduhub/internal/pkg/validation"
)

// Required inputs per route. A rule rejects with its message before the handler runs.
const allRequired = "All required fields must be provided"

var (
	userProfileRule   = validation.RequireQuery("uid is required", "uid")
	addUserRule       = validation.RequireBody("uid, name and email are required", "uid", "name", "email")
	updateProfileRule = validation.RequireBody("uid is required", "uid")
	updateRoleRule    = validation.RequireBody("id and role are required", "id", "role")
	deleteUserRule    = validation.RequireBody("User id is required", "id")
	courseUsersRule   = validation.Rule{
		Source:  validation.Body,
		Fields:  []validation.Field{validation.NonEmptyList("userIds")},
		Message: "userIds array is required",
	}

	discussionFields     = validation.RequireBody(allRequired, "title", "description", "category")
	addDiscussionRule    = discussionFields.With(field("uid"), field("name"), field("email"))
	updateDiscussionRule = discussionFields.With(field("id"))
	discussionIDRule     = validation.RequireBody("Discussion id is required", "id")
	myDiscussionsRule    = validation.RequireQuery("uid is required", "uid")
	addDisCommentRule    = validation.RequireBody(allRequired, "disid", "uid", "name", "description", "email")
	disCommentsRule      = validation.RequireBody("Discussion id is required", "disid")
	updateDisCommentRule = validation.RequireBody(allRequired, "id", "description")
	commentIDRule        = validation.RequireBody("Comment id is required", "id")

	eventFields         = validation.RequireBody(allRequired, "title", "date", "location", "description")
	addEventRule        = eventFields.With(field("uid"), field("category"))
	updateEventRule     = eventFields.With(field("id"))
	eventIDRule         = validation.RequireBody("Event id is required", "id")
	addEventCommentRule = validation.RequireBody(allRequired, "eid", "uid", "name", "text", "email")
	eventCommentsRule   = validation.RequireBody("Event id is required", "eid")

	articleFields     = validation.RequireBody(allRequired, "title", "description", "category")
	addArticleRule    = articleFields.With(field("uid"), field("author"))
	updateArticleRule = articleFields.With(field("id"))
	articleIDRule     = validation.RequireBody("Article id is required", "id")

	addQuestionRule    = validation.RequireBody(allRequired, "userId", "uname", "courseId", "chapterId", "text")
	courseQuestionRule = validation.RequireBody("courseId is required", "courseId")
	answerRule         = validation.RequireBody(allRequired, "questionId", "userId", "uname", "text")
	questionIDRule     = validation.RequireBody("Question id is required", "id")
)

func field(name string) validation.Field {
	return validation.Field{Name: name}
}
