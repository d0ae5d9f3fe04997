package services

import (
	"context"
	"errors"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/app/repositories"
	"github.com/yigit/eduhub/internal/pkg/apperrors"
	"github.com/yigit/eduhub/internal/pkg/helpers"
	"github.com/yigit/eduhub/internal/pkg/logger"
)

// UserService defines the interface for user-related operations
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetProfile(ctx context.Context, uid, email string) (*models.UserProfile, error)
	AddUser(ctx context.Context, req *dto.AddUserRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
	UpdateRole(ctx context.Context, id string, role models.RoleType) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	ListCourseUsers(ctx context.Context, uids []string) ([]*models.CourseUser, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	users UserStore
}

// NewUserService creates a new user service instance
func NewUserService(users UserStore) UserService {
	return &userServiceImpl{users: users}
}

// ListUsers returns every user; an empty collection is a 404
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.NewResourceNotFoundError("No users found.")
	}
	return users, nil
}

// GetProfile looks up a profile by uid and, when given, email
func (s *userServiceImpl) GetProfile(ctx context.Context, uid, email string) (*models.UserProfile, error) {
	profile, err := s.users.FindProfile(ctx, uid, email)
	if err != nil {
		return nil, notFound(err, "User not found.")
	}
	return profile, nil
}

// AddUser registers a user unless the uid or email is already taken
func (s *userServiceImpl) AddUser(ctx context.Context, req *dto.AddUserRequest) (*models.User, error) {
	existing, err := s.users.FindExisting(ctx, req.UID, req.Email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("User already exists")
	}

	user := &models.User{
		UID:     req.UID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Image:   req.Image,
		Role:    req.Role,
		Address: req.Address,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// lost a race against a concurrent sign-up
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return nil, apperrors.NewConflictError("User already exists")
		}
		return nil, err
	}

	logger.Info().Str("uid", user.UID).Msg("User added")
	return user, nil
}

// UpdateProfile keeps the stored value of every field the request leaves blank
func (s *userServiceImpl) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	current, err := s.users.FindByUID(ctx, req.UID)
	if err != nil {
		return nil, notFound(err, "User not found")
	}

	profile := &models.User{
		Name:    helpers.FirstNonEmpty(req.Name, current.Name),
		Phone:   helpers.FirstNonEmpty(req.Phone, current.Phone),
		Image:   helpers.FirstNonEmpty(req.Image, current.Image),
		Address: current.Address,
	}
	if len(req.Address) > 0 {
		profile.Address = req.Address
	}

	updated, err := s.users.UpdateProfile(ctx, req.UID, profile)
	if err != nil {
		return nil, notFound(err, "User not found")
	}
	return updated, nil
}

func (s *userServiceImpl) UpdateRole(ctx context.Context, id string, role models.RoleType) (*models.User, error) {
	user, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, notFound(err, "User not found")
	}
	return user, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

// ListCourseUsers resolves enrolled uids to their public projection
func (s *userServiceImpl) ListCourseUsers(ctx context.Context, uids []string) ([]*models.CourseUser, error) {
	users, err := s.users.FindByUIDs(ctx, uids)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.NewResourceNotFoundError("No users found.")
	}
	return users, nil
}
