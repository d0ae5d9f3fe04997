package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/app/services"
	"github.com/yigit/eduhub/internal/middleware"
)

// UserController handles user profile and user administration routes
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// ListUsers returns every registered user
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {array} models.User
// @Failure 404 {object} dto.MessageResponse "No users found."
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/listUsers [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.userService.ListUsers(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// UserProfile returns the selected profile fields of one user
// @Summary Get user profile
// @Tags user
// @Produce json
// @Param uid query string true "External auth id"
// @Param email query string false "Email"
// @Success 200 {object} models.UserProfile
// @Failure 400 {object} dto.MessageResponse "uid is required"
// @Failure 404 {object} dto.MessageResponse "User not found."
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/userProfile [get]
func (uc *UserController) UserProfile(c *gin.Context) {
	profile, err := uc.userService.GetProfile(c.Request.Context(), c.Query("uid"), c.Query("email"))
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching user profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// AddUser registers a user after external sign-up
// @Summary Add user
// @Tags user
// @Accept json
// @Produce json
// @Param request body dto.AddUserRequest true "User"
// @Success 201 {object} dto.UserEnvelope
// @Failure 400 {object} dto.MessageResponse "uid, name and email are required / User already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/addUser [post]
func (uc *UserController) AddUser(c *gin.Context) {
	var req dto.AddUserRequest
	if !bindBody(c, &req) {
		return
	}

	user, err := uc.userService.AddUser(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error adding user")
		return
	}
	c.JSON(http.StatusCreated, dto.UserEnvelope{Message: "User added successfully", User: user})
}

// UpdateProfile updates the caller's profile, keeping blank fields
// @Summary Update profile
// @Tags user
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile"
// @Success 200 {object} dto.UserEnvelope
// @Failure 404 {object} dto.MessageResponse "User not found"
// @Router /user/updateProfile [put]
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !bindBody(c, &req) {
		return
	}

	user, err := uc.userService.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error updating profile")
		return
	}
	c.JSON(http.StatusOK, dto.UserEnvelope{Message: "Profile updated successfully", User: user})
}

// UpdateUserRole changes a user's role
// @Summary Update user role
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateUserRoleRequest true "Role change"
// @Success 200 {object} dto.UserEnvelope
// @Failure 400 {object} dto.MessageResponse "id and role are required"
// @Failure 404 {object} dto.MessageResponse "User not found"
// @Router /api/admin/updateUserRole [put]
func (uc *UserController) UpdateUserRole(c *gin.Context) {
	var req dto.UpdateUserRoleRequest
	if !bindBody(c, &req) {
		return
	}

	user, err := uc.userService.UpdateRole(c.Request.Context(), req.ID, req.Role)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error updating user role")
		return
	}
	c.JSON(http.StatusOK, dto.UserEnvelope{Message: "User role updated successfully", User: user})
}

// DeleteUser removes a user by id
// @Summary Delete user
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.IDRequest true "User id"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse "User id is required"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/deleteUser [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	var req dto.IDRequest
	if !bindBody(c, &req) {
		return
	}

	if err := uc.userService.DeleteUser(c.Request.Context(), req.ID); err != nil {
		middleware.HandleAPIError(c, err, "Error deleting user")
		return
	}
	deleted(c, "User deleted successfully")
}

// ListCourseUsers resolves the uids enrolled in a course
// @Summary List course users
// @Tags lecturer
// @Accept json
// @Produce json
// @Param request body dto.CourseUsersRequest true "Enrolled uids"
// @Success 200 {array} models.CourseUser
// @Failure 400 {object} dto.MessageResponse "userIds array is required"
// @Failure 404 {object} dto.MessageResponse "No users found."
// @Router /api/lecturer/listCourseUsers [post]
func (uc *UserController) ListCourseUsers(c *gin.Context) {
	var req dto.CourseUsersRequest
	if !bindBody(c, &req) {
		return
	}

	users, err := uc.userService.ListCourseUsers(c.Request.Context(), req.UserIDs)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching course users")
		return
	}
	c.JSON(http.StatusOK, users)
}
