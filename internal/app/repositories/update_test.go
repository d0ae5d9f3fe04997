package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/eduhub/internal/app/models"
)

func TestEventUpdateKeepsOmittedOptionalFields(t *testing.T) {
	set := eventUpdate(&models.Event{
		Title:       "Go meetup",
		Date:        "2024-05-01",
		Location:    "Hall B",
		Description: "Lightning talks",
	})

	assert.Equal(t, bson.M{
		"title":       "Go meetup",
		"date":        "2024-05-01",
		"location":    "Hall B",
		"description": "Lightning talks",
	}, set)
	for _, field := range []string{"category", "type", "url", "image", "status"} {
		assert.NotContains(t, set, field)
	}
}

func TestEventUpdateSetsProvidedOptionalFields(t *testing.T) {
	set := eventUpdate(&models.Event{
		Title:    "Go meetup",
		Category: "community",
		Type:     "online",
		URL:      "https://meet.example.com/go",
		Image:    "https://cdn.example.com/go.png",
		Status:   "true",
	})

	assert.Equal(t, "community", set["category"])
	assert.Equal(t, "online", set["type"])
	assert.Equal(t, "https://meet.example.com/go", set["url"])
	assert.Equal(t, "https://cdn.example.com/go.png", set["image"])
	assert.Equal(t, "true", set["status"])
}

func TestArticleUpdateKeepsOmittedMedia(t *testing.T) {
	set := articleUpdate(&models.Article{Title: "Generics", Description: "Type parameters", Category: "go"})

	assert.Equal(t, bson.M{"title": "Generics", "description": "Type parameters", "category": "go"}, set)

	set = articleUpdate(&models.Article{Title: "Generics", Image: "a.png", URL: "https://go.dev/blog"})
	assert.Equal(t, "a.png", set["image"])
	assert.Equal(t, "https://go.dev/blog", set["url"])
}

func TestCommentCountUpdateSkipsUnchangedCount(t *testing.T) {
	id := primitive.NewObjectID()

	filter, update := commentCountUpdate(id, 5)

	assert.Equal(t, bson.M{"_id": id, "comments": bson.M{"$ne": int64(5)}}, filter)
	set, ok := update["$set"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, int64(5), set["comments"])
	assert.Contains(t, set, "updatedAt")
}
