package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/eduhub/internal/app/models"
)

const allRequiredMessage = `{"message":"All required fields must be provided"}`

// assertNoStoreCalls fails when any store was reached
func (f *fixture) assertNoStoreCalls(t *testing.T) {
	t.Helper()
	calls := map[string]int{
		"users":         len(f.users.Calls),
		"discussions":   len(f.discussions.Calls),
		"disComments":   len(f.disComments.Calls),
		"events":        len(f.events.Calls),
		"eventComments": len(f.eventComments.Calls),
		"articles":      len(f.articles.Calls),
		"questions":     len(f.questions.Calls),
		"catalog":       len(f.catalog.Calls),
	}
	for store, n := range calls {
		assert.Zerof(t, n, "%s store was called", store)
	}
}

type listCase struct {
	name    string
	method  string
	path    string
	body    string
	message string
	// stub registers the store read. It returns the documents the handler
	// must echo, or nil when asked for an empty result.
	stub func(f *fixture, empty bool) interface{}
}

func listCases() []listCase {
	discussion := &models.Discussion{ID: primitive.NewObjectID(), UID: "u1", Title: "Goroutines", Category: "go", Comments: 2}
	disComment := &models.DiscussionComment{ID: primitive.NewObjectID(), DisID: discussion.ID.Hex(), UID: "u2", Description: "Use errgroup"}
	eventComment := &models.EventComment{ID: primitive.NewObjectID(), EID: "e1", UID: "u2", Text: "See you there"}
	article := &models.Article{ID: primitive.NewObjectID(), UID: "a1", Author: "Ada", Title: "Generics", Likes: 3}
	user := &models.User{UID: "u1", Name: "Ada", Email: "ada@example.com", Role: models.RoleStudent}
	question := &models.CourseQuestion{ID: primitive.NewObjectID(), CourseID: "c1", ChapterID: "ch1", Text: "Why channels?", Answers: []models.Answer{}}
	category := &models.Category{ID: 1, Name: "Programming"}

	listDiscussions := func(f *fixture, empty bool) interface{} {
		if empty {
			f.discussions.On("FindAll", mock.Anything).Return([]*models.Discussion{}, nil)
			return nil
		}
		f.discussions.On("FindAll", mock.Anything).Return([]*models.Discussion{discussion}, nil)
		f.disComments.On("CountByDiscussion", mock.Anything, discussion.ID.Hex()).Return(int64(2), nil)
		return []*models.Discussion{discussion}
	}
	listArticles := func(f *fixture, empty bool) interface{} {
		if empty {
			f.articles.On("FindAll", mock.Anything).Return([]*models.Article{}, nil)
			return nil
		}
		f.articles.On("FindAll", mock.Anything).Return([]*models.Article{article}, nil)
		return []*models.Article{article}
	}
	listDisComments := func(f *fixture, empty bool) interface{} {
		if empty {
			f.disComments.On("FindAll", mock.Anything).Return([]*models.DiscussionComment{}, nil)
			return nil
		}
		f.disComments.On("FindAll", mock.Anything).Return([]*models.DiscussionComment{disComment}, nil)
		return []*models.DiscussionComment{disComment}
	}
	listEventComments := func(f *fixture, empty bool) interface{} {
		if empty {
			f.eventComments.On("FindAll", mock.Anything).Return([]*models.EventComment{}, nil)
			return nil
		}
		f.eventComments.On("FindAll", mock.Anything).Return([]*models.EventComment{eventComment}, nil)
		return []*models.EventComment{eventComment}
	}

	return []listCase{
		{"admin listUsers", http.MethodGet, "/api/admin/listUsers", "", "No users found.",
			func(f *fixture, empty bool) interface{} {
				if empty {
					f.users.On("FindAll", mock.Anything).Return([]*models.User{}, nil)
					return nil
				}
				f.users.On("FindAll", mock.Anything).Return([]*models.User{user}, nil)
				return []*models.User{user}
			}},
		{"admin listDiscussions", http.MethodGet, "/api/admin/listDiscussions", "", "No discussions found.", listDiscussions},
		{"user listDiscussions", http.MethodGet, "/user/listDiscussions", "", "No discussions found.", listDiscussions},
		{"user myDiscussions", http.MethodGet, "/user/myDiscussions?uid=u1", "", "No discussions found.",
			func(f *fixture, empty bool) interface{} {
				if empty {
					f.discussions.On("FindByUID", mock.Anything, "u1").Return([]*models.Discussion{}, nil)
					return nil
				}
				f.discussions.On("FindByUID", mock.Anything, "u1").Return([]*models.Discussion{discussion}, nil)
				return []*models.Discussion{discussion}
			}},
		{"admin listDiscussionComments", http.MethodGet, "/api/admin/listDiscussionComments", "", "No comments found.", listDisComments},
		{"user viewDiscussionComments", http.MethodPost, "/user/viewDiscussionComments", `{"disid":"d1"}`, "No comments found.",
			func(f *fixture, empty bool) interface{} {
				if empty {
					f.disComments.On("FindByDiscussion", mock.Anything, "d1").Return([]*models.DiscussionComment{}, nil)
					return nil
				}
				f.disComments.On("FindByDiscussion", mock.Anything, "d1").Return([]*models.DiscussionComment{disComment}, nil)
				return []*models.DiscussionComment{disComment}
			}},
		{"admin listEventComments", http.MethodGet, "/api/admin/listEventComments", "", "No comments found.", listEventComments},
		{"user viewEventComments", http.MethodPost, "/user/viewEventComments", `{"eid":"e1"}`, "No comments found.",
			func(f *fixture, empty bool) interface{} {
				if empty {
					f.eventComments.On("FindByEvent", mock.Anything, "e1").Return([]*models.EventComment{}, nil)
					return nil
				}
				f.eventComments.On("FindByEvent", mock.Anything, "e1").Return([]*models.EventComment{eventComment}, nil)
				return []*models.EventComment{eventComment}
			}},
		{"admin listArticles", http.MethodGet, "/api/admin/listArticles", "", "No articles found.", listArticles},
		{"user listArticles", http.MethodGet, "/user/listArticles", "", "No articles found.", listArticles},
		{"admin listCategories", http.MethodGet, "/api/admin/listCategories", "", "No categories found.",
			func(f *fixture, empty bool) interface{} {
				if empty {
					f.catalog.On("ListCategories", mock.Anything).Return([]*models.Category{}, nil)
					return nil
				}
				f.catalog.On("ListCategories", mock.Anything).Return([]*models.Category{category}, nil)
				return []*models.Category{category}
			}},
		{"lecturer listCourseQuestions", http.MethodPost, "/api/lecturer/listCourseQuestions", `{"courseId":"c1"}`, "No questions found.",
			func(f *fixture, empty bool) interface{} {
				if empty {
					f.questions.On("FindByCourse", mock.Anything, "c1", "").Return([]*models.CourseQuestion{}, nil)
					return nil
				}
				f.questions.On("FindByCourse", mock.Anything, "c1", "").Return([]*models.CourseQuestion{question}, nil)
				return []*models.CourseQuestion{question}
			}},
	}
}

func TestListEndpoints(t *testing.T) {
	for _, tc := range listCases() {
		t.Run(tc.name+" empty", func(t *testing.T) {
			f := newFixture(nil)
			tc.stub(f, true)

			w := f.do(tc.method, tc.path, tc.body)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"message":"`+tc.message+`"}`, w.Body.String())
		})

		t.Run(tc.name+" found", func(t *testing.T) {
			f := newFixture(nil)
			want, err := json.Marshal(tc.stub(f, false))
			require.NoError(t, err)

			w := f.do(tc.method, tc.path, tc.body)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, string(want), w.Body.String())
		})
	}
}

func TestListEventsEmptyAndCounted(t *testing.T) {
	for _, path := range []string{"/api/admin/listEvents", "/user/listEvents"} {
		f := newFixture(nil)
		f.events.On("FindAll", mock.Anything).Return([]*models.Event{}, nil)

		w := f.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"message":"No events found."}`, w.Body.String())

		event := &models.Event{ID: primitive.NewObjectID(), Title: "Go meetup", Status: models.DefaultEventStatus}
		f = newFixture(nil)
		f.events.On("FindAll", mock.Anything).Return([]*models.Event{event}, nil)
		f.eventComments.On("CountByEvent", mock.Anything, event.ID.Hex()).Return(int64(4), nil)
		want, err := json.Marshal([]*models.EventWithComments{{Event: *event, Comments: 4}})
		require.NoError(t, err)

		w = f.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, string(want), w.Body.String())
		f.events.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestRouteRules(t *testing.T) {
	tests := []struct {
		method string
		path   string
		body   string
		want   string
	}{
		{http.MethodPut, "/api/admin/updateUserRole", `{"id":"64f0c2a1e4b0a1b2c3d4e5f6"}`, `{"message":"id and role are required"}`},
		{http.MethodDelete, "/api/admin/deleteUser", `{}`, `{"message":"User id is required"}`},
		{http.MethodDelete, "/api/admin/deleteDiscussion", `{}`, `{"message":"Discussion id is required"}`},
		{http.MethodDelete, "/api/admin/deleteDiscussionComment", `{}`, `{"message":"Comment id is required"}`},
		{http.MethodPost, "/api/admin/addEvent", `{"uid":"a1","title":"Meetup","date":"2024-05-01","location":"Hall B","description":"Talks"}`, allRequiredMessage},
		{http.MethodPut, "/api/admin/updateEvent", `{"title":"Meetup","date":"2024-05-01","location":"Hall B","description":"Talks"}`, allRequiredMessage},
		{http.MethodDelete, "/api/admin/deleteEvent", `{}`, `{"message":"Event id is required"}`},
		{http.MethodDelete, "/api/admin/deleteEventComment", `{}`, `{"message":"Comment id is required"}`},
		{http.MethodPost, "/api/admin/addArticle", `{"uid":"a1","title":"Generics","description":"Type parameters","category":"go"}`, allRequiredMessage},
		{http.MethodPut, "/api/admin/updateArticle", `{"id":"64f0c2a1e4b0a1b2c3d4e5f6","title":"Generics","description":"Type parameters"}`, allRequiredMessage},
		{http.MethodDelete, "/api/admin/deleteArticle", `{}`, `{"message":"Article id is required"}`},

		{http.MethodPost, "/api/lecturer/listCourseUsers", `{"userIds":[]}`, `{"message":"userIds array is required"}`},
		{http.MethodPost, "/api/lecturer/listCourseQuestions", `{"chapterId":"ch1"}`, `{"message":"courseId is required"}`},
		{http.MethodPost, "/api/lecturer/answerQuestion", `{"questionId":"q1","userId":"l1","uname":"Dr. Lee"}`, allRequiredMessage},

		{http.MethodGet, "/user/userProfile?email=ada@example.com", "", `{"message":"uid is required"}`},
		{http.MethodPost, "/user/addUser", `{"uid":"u1","email":"ada@example.com"}`, `{"message":"uid, name and email are required"}`},
		{http.MethodPut, "/user/updateProfile", `{"name":"Ada"}`, `{"message":"uid is required"}`},
		{http.MethodPost, "/user/addDiscussion", `{"uid":"u1","name":"Ada","title":"Goroutines","description":"When","category":"go"}`, allRequiredMessage},
		{http.MethodPut, "/user/updateDiscussion", `{"title":"Goroutines","description":"When","category":"go"}`, allRequiredMessage},
		{http.MethodDelete, "/user/deleteDiscussion", `{}`, `{"message":"Discussion id is required"}`},
		{http.MethodPost, "/user/viewDiscussion", `{"id":""}`, `{"message":"Discussion id is required"}`},
		{http.MethodGet, "/user/myDiscussions", "", `{"message":"uid is required"}`},
		{http.MethodPost, "/user/addDiscussionComment", `{"disid":"d1","uid":"u1","name":"Ada","description":"Agreed"}`, allRequiredMessage},
		{http.MethodPost, "/user/viewDiscussionComments", `{}`, `{"message":"Discussion id is required"}`},
		{http.MethodPut, "/user/updateDiscussionComment", `{"id":"64f0c2a1e4b0a1b2c3d4e5f6"}`, allRequiredMessage},
		{http.MethodDelete, "/user/deleteDiscussionComment", `{}`, `{"message":"Comment id is required"}`},
		{http.MethodPost, "/user/viewEvent", `{}`, `{"message":"Event id is required"}`},
		{http.MethodPost, "/user/addEventComment", `{"eid":"e1","uid":"u1","name":"Ada","email":"ada@example.com"}`, allRequiredMessage},
		{http.MethodPost, "/user/viewEventComments", `{"eid":null}`, `{"message":"Event id is required"}`},
		{http.MethodDelete, "/user/deleteEventComment", `{}`, `{"message":"Comment id is required"}`},
		{http.MethodPost, "/user/viewArticle", `{}`, `{"message":"Article id is required"}`},
		{http.MethodPut, "/user/likeArticle", `{}`, `{"message":"Article id is required"}`},
		{http.MethodPost, "/user/addCourseQuestion", `{"userId":"u1","uname":"Ada","courseId":"c1","text":"Why?"}`, allRequiredMessage},
		{http.MethodPost, "/user/viewCourseQuestions", `{}`, `{"message":"courseId is required"}`},
		{http.MethodPost, "/user/addAnswer", `{"questionId":"q1","userId":"u1","text":"Because"}`, allRequiredMessage},
		{http.MethodDelete, "/user/deleteCourseQuestion", `{}`, `{"message":"Question id is required"}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			f := newFixture(nil)

			w := f.do(tt.method, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
			f.assertNoStoreCalls(t)
		})
	}
}

func TestUpdateEventWithRequiredFieldsOnly(t *testing.T) {
	f := newFixture(nil)
	id := primitive.NewObjectID()
	var sent *models.Event
	f.events.On("Update", mock.Anything, id.Hex(), mock.AnythingOfType("*models.Event")).
		Run(func(args mock.Arguments) { sent = args.Get(2).(*models.Event) }).
		Return(&models.Event{ID: id, Title: "Go meetup", Category: "community", Image: "go.png"}, nil)

	body := `{"id":"` + id.Hex() + `","title":"Go meetup","date":"2024-05-01","location":"Hall B","description":"Talks"}`
	w := f.do(http.MethodPut, "/api/admin/updateEvent", body)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, sent)
	assert.Equal(t, "Go meetup", sent.Title)
	assert.Equal(t, "Hall B", sent.Location)
	assert.Empty(t, sent.Category)
	assert.Empty(t, sent.Type)
	assert.Empty(t, sent.URL)
	assert.Empty(t, sent.Image)
	assert.Empty(t, sent.Status)
	assert.Contains(t, w.Body.String(), `"category":"community"`)
}

func TestUpdateArticleWithRequiredFieldsOnly(t *testing.T) {
	f := newFixture(nil)
	id := primitive.NewObjectID()
	var sent *models.Article
	f.articles.On("Update", mock.Anything, id.Hex(), mock.AnythingOfType("*models.Article")).
		Run(func(args mock.Arguments) { sent = args.Get(2).(*models.Article) }).
		Return(&models.Article{ID: id, Title: "Generics", Image: "cover.png", URL: "https://go.dev/blog"}, nil)

	body := `{"id":"` + id.Hex() + `","title":"Generics","description":"Type parameters","category":"go"}`
	w := f.do(http.MethodPut, "/api/admin/updateArticle", body)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, sent)
	assert.Empty(t, sent.Image)
	assert.Empty(t, sent.URL)
	assert.Contains(t, w.Body.String(), `"image":"cover.png"`)
}
