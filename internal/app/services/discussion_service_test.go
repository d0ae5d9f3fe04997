package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/app/repositories"
	"github.com/yigit/eduhub/internal/app/services/mocks"
	"github.com/yigit/eduhub/internal/pkg/apperrors"
)

func TestListDiscussionsRecomputesAndPersistsCounts(t *testing.T) {
	first := &models.Discussion{ID: primitive.NewObjectID(), Title: "Go generics", Comments: 99}
	second := &models.Discussion{ID: primitive.NewObjectID(), Title: "Mongo indexes"}

	discussions := new(mocks.DiscussionStore)
	comments := new(mocks.DiscussionCommentStore)
	discussions.On("FindAll", mock.Anything).Return([]*models.Discussion{first, second}, nil)
	comments.On("CountByDiscussion", mock.Anything, first.ID.Hex()).Return(int64(3), nil)
	comments.On("CountByDiscussion", mock.Anything, second.ID.Hex()).Return(int64(5), nil)
	discussions.On("SaveCommentCount", mock.Anything, first.ID, int64(3)).Return(nil).Once()
	discussions.On("SaveCommentCount", mock.Anything, second.ID, int64(5)).Return(nil).Once()

	result, err := NewDiscussionService(discussions, comments).ListDiscussions(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Go generics", result[0].Title)
	assert.Equal(t, int64(3), result[0].Comments)
	assert.Equal(t, int64(5), result[1].Comments)
	discussions.AssertExpectations(t)
	comments.AssertExpectations(t)
}

func TestListDiscussionsSkipsUnchangedCounts(t *testing.T) {
	settled := &models.Discussion{ID: primitive.NewObjectID(), Title: "Go generics", Comments: 4}

	discussions := new(mocks.DiscussionStore)
	comments := new(mocks.DiscussionCommentStore)
	discussions.On("FindAll", mock.Anything).Return([]*models.Discussion{settled}, nil)
	comments.On("CountByDiscussion", mock.Anything, settled.ID.Hex()).Return(int64(4), nil)

	result, err := NewDiscussionService(discussions, comments).ListDiscussions(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(4), result[0].Comments)
	discussions.AssertNotCalled(t, "SaveCommentCount", mock.Anything, mock.Anything, mock.Anything)
}

func TestListDiscussionsEmpty(t *testing.T) {
	discussions := new(mocks.DiscussionStore)
	comments := new(mocks.DiscussionCommentStore)
	discussions.On("FindAll", mock.Anything).Return([]*models.Discussion{}, nil)

	_, err := NewDiscussionService(discussions, comments).ListDiscussions(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "No discussions found.", apperrors.MessageOf(err, ""))
	comments.AssertNotCalled(t, "CountByDiscussion", mock.Anything, mock.Anything)
}

func TestListDiscussionsCountFailure(t *testing.T) {
	d := &models.Discussion{ID: primitive.NewObjectID()}
	discussions := new(mocks.DiscussionStore)
	comments := new(mocks.DiscussionCommentStore)
	discussions.On("FindAll", mock.Anything).Return([]*models.Discussion{d}, nil)
	comments.On("CountByDiscussion", mock.Anything, d.ID.Hex()).Return(int64(0), errors.New("server selection timeout"))

	result, err := NewDiscussionService(discussions, comments).ListDiscussions(context.Background())

	assert.Nil(t, result)
	assert.EqualError(t, err, "server selection timeout")
	discussions.AssertNotCalled(t, "SaveCommentCount", mock.Anything, mock.Anything, mock.Anything)
}

func TestViewDiscussionNotFound(t *testing.T) {
	discussions := new(mocks.DiscussionStore)
	discussions.On("FindByID", mock.Anything, "64f0c2a1e4b0a1b2c3d4e5f6").Return(nil, repositories.ErrNotFound)

	_, err := NewDiscussionService(discussions, new(mocks.DiscussionCommentStore)).
		ViewDiscussion(context.Background(), "64f0c2a1e4b0a1b2c3d4e5f6")

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "No discussion found.", apperrors.MessageOf(err, ""))
}

func TestUpdateDiscussionPassesStoreErrorThrough(t *testing.T) {
	discussions := new(mocks.DiscussionStore)
	storeErr := errors.New(`cast to ObjectId failed for value "abc"`)
	discussions.On("Update", mock.Anything, "abc", mock.Anything).Return(nil, storeErr)

	_, err := NewDiscussionService(discussions, new(mocks.DiscussionCommentStore)).
		UpdateDiscussion(context.Background(), &dto.DiscussionRequest{ID: "abc", Title: "t"})

	assert.Same(t, storeErr, err)
}
