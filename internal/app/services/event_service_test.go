package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/app/services/mocks"
	"github.com/yigit/eduhub/internal/pkg/apperrors"
)

func TestListEventsAttachesCountsWithoutPersisting(t *testing.T) {
	meetup := &models.Event{ID: primitive.NewObjectID(), Title: "Meetup"}
	hackathon := &models.Event{ID: primitive.NewObjectID(), Title: "Hackathon"}

	events := new(mocks.EventStore)
	comments := new(mocks.EventCommentStore)
	events.On("FindAll", mock.Anything).Return([]*models.Event{meetup, hackathon}, nil)
	comments.On("CountByEvent", mock.Anything, meetup.ID.Hex()).Return(int64(2), nil)
	comments.On("CountByEvent", mock.Anything, hackathon.ID.Hex()).Return(int64(0), nil)

	result, err := NewEventService(events, comments).ListEvents(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Meetup", result[0].Title)
	assert.Equal(t, int64(2), result[0].Comments)
	assert.Equal(t, "Hackathon", result[1].Title)
	assert.Equal(t, int64(0), result[1].Comments)
	events.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestListEventsEmpty(t *testing.T) {
	events := new(mocks.EventStore)
	events.On("FindAll", mock.Anything).Return([]*models.Event{}, nil)

	_, err := NewEventService(events, new(mocks.EventCommentStore)).ListEvents(context.Background())

	assert.Equal(t, "No events found.", apperrors.MessageOf(err, ""))
}

func TestAddEventKeepsOwner(t *testing.T) {
	events := new(mocks.EventStore)
	events.On("Create", mock.Anything, mock.MatchedBy(func(e *models.Event) bool {
		return e.UID == "admin-1" && e.Title == "Meetup"
	})).Return(nil)

	event, err := NewEventService(events, new(mocks.EventCommentStore)).AddEvent(context.Background(), &dto.EventRequest{
		UID: "admin-1", Title: "Meetup", Date: "2024-05-01", Location: "Hall A", Description: "d", Category: "tech",
	})

	require.NoError(t, err)
	assert.Equal(t, "Hall A", event.Location)
	events.AssertExpectations(t)
}
