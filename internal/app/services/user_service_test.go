package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/app/repositories"
	"github.com/yigit/eduhub/internal/app/services/mocks"
	"github.com/yigit/eduhub/internal/pkg/apperrors"
)

func TestAddUserRejectsExisting(t *testing.T) {
	users := new(mocks.UserStore)
	users.On("FindExisting", mock.Anything, "u1", "a@b.c").Return(&models.User{UID: "u1"}, nil)

	_, err := NewUserService(users).AddUser(context.Background(), &dto.AddUserRequest{UID: "u1", Name: "A", Email: "a@b.c"})

	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)
	assert.Equal(t, "User already exists", apperrors.MessageOf(err, ""))
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddUserDuplicateKeyRace(t *testing.T) {
	users := new(mocks.UserStore)
	users.On("FindExisting", mock.Anything, "u1", "a@b.c").Return(nil, repositories.ErrNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(repositories.ErrAlreadyExists)

	_, err := NewUserService(users).AddUser(context.Background(), &dto.AddUserRequest{UID: "u1", Name: "A", Email: "a@b.c"})

	assert.Equal(t, "User already exists", apperrors.MessageOf(err, ""))
}

func TestUpdateProfileKeepsBlankFields(t *testing.T) {
	users := new(mocks.UserStore)
	current := &models.User{UID: "u1", Name: "Ada", Phone: "555", Image: "a.png", Address: bson.M{"city": "Izmir"}}
	users.On("FindByUID", mock.Anything, "u1").Return(current, nil)
	users.On("UpdateProfile", mock.Anything, "u1", &models.User{
		Name:    "Ada L.",
		Phone:   "555",
		Image:   "a.png",
		Address: bson.M{"city": "Izmir"},
	}).Return(&models.User{UID: "u1", Name: "Ada L."}, nil)

	user, err := NewUserService(users).UpdateProfile(context.Background(), &dto.UpdateProfileRequest{UID: "u1", Name: "Ada L."})

	require.NoError(t, err)
	assert.Equal(t, "Ada L.", user.Name)
	users.AssertExpectations(t)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	users := new(mocks.UserStore)
	users.On("FindByUID", mock.Anything, "ghost").Return(nil, repositories.ErrNotFound)

	_, err := NewUserService(users).UpdateProfile(context.Background(), &dto.UpdateProfileRequest{UID: "ghost"})

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "User not found", apperrors.MessageOf(err, ""))
}

func TestListCourseUsersEmpty(t *testing.T) {
	users := new(mocks.UserStore)
	users.On("FindByUIDs", mock.Anything, []string{"x"}).Return([]*models.CourseUser{}, nil)

	_, err := NewUserService(users).ListCourseUsers(context.Background(), []string{"x"})

	assert.Equal(t, "No users found.", apperrors.MessageOf(err, ""))
}
