package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/app/services"
	"github.com/yigit/eduhub/internal/middleware"
)

// DiscussionController handles discussions and their comments
type DiscussionController struct {
	discussionService services.DiscussionService
}

// NewDiscussionController creates a new DiscussionController
func NewDiscussionController(discussionService services.DiscussionService) *DiscussionController {
	return &DiscussionController{discussionService: discussionService}
}

// ListDiscussions returns every discussion with a fresh comment count
// @Summary List discussions
// @Tags discussions
// @Produce json
// @Success 200 {array} models.Discussion
// @Failure 404 {object} dto.MessageResponse "No discussions found."
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/listDiscussions [get]
func (dc *DiscussionController) ListDiscussions(c *gin.Context) {
	discussions, err := dc.discussionService.ListDiscussions(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching discussions")
		return
	}
	c.JSON(http.StatusOK, discussions)
}

// MyDiscussions returns the discussions started by one user
// @Summary My discussions
// @Tags discussions
// @Produce json
// @Param uid query string true "External auth id"
// @Success 200 {array} models.Discussion
// @Failure 400 {object} dto.MessageResponse "uid is required"
// @Failure 404 {object} dto.MessageResponse "No discussions found."
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/myDiscussions [get]
func (dc *DiscussionController) MyDiscussions(c *gin.Context) {
	discussions, err := dc.discussionService.MyDiscussions(c.Request.Context(), c.Query("uid"))
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching discussions")
		return
	}
	c.JSON(http.StatusOK, discussions)
}

// ViewDiscussion returns one discussion
// @Summary View discussion
// @Tags discussions
// @Accept json
// @Produce json
// @Param request body dto.IDRequest true "Discussion id"
// @Success 200 {object} models.Discussion
// @Failure 400 {object} dto.MessageResponse "Discussion id is required"
// @Failure 404 {object} dto.MessageResponse "No discussion found."
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/viewDiscussion [post]
func (dc *DiscussionController) ViewDiscussion(c *gin.Context) {
	var req dto.IDRequest
	if !bindBody(c, &req) {
		return
	}

	discussion, err := dc.discussionService.ViewDiscussion(c.Request.Context(), req.ID)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching discussion")
		return
	}
	c.JSON(http.StatusOK, discussion)
}

// AddDiscussion starts a discussion
// @Summary Add discussion
// @Tags discussions
// @Accept json
// @Produce json
// @Param request body dto.DiscussionRequest true "Discussion"
// @Success 201 {object} dto.DiscussionEnvelope
// @Failure 400 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/addDiscussion [post]
func (dc *DiscussionController) AddDiscussion(c *gin.Context) {
	var req dto.DiscussionRequest
	if !bindBody(c, &req) {
		return
	}

	discussion, err := dc.discussionService.AddDiscussion(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error adding discussion")
		return
	}
	c.JSON(http.StatusCreated, dto.DiscussionEnvelope{Message: "Discussion added successfully", Discussion: discussion})
}

// UpdateDiscussion edits title, description and category
// @Summary Update discussion
// @Tags discussions
// @Accept json
// @Produce json
// @Param request body dto.DiscussionRequest true "Discussion"
// @Success 200 {object} dto.DiscussionEnvelope
// @Failure 400 {object} dto.MessageResponse "All required fields must be provided"
// @Failure 404 {object} dto.MessageResponse "Discussion not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/updateDiscussion [put]
func (dc *DiscussionController) UpdateDiscussion(c *gin.Context) {
	var req dto.DiscussionRequest
	if !bindBody(c, &req) {
		return
	}

	discussion, err := dc.discussionService.UpdateDiscussion(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error updating discussion")
		return
	}
	c.JSON(http.StatusOK, dto.DiscussionEnvelope{Message: "Discussion updated successfully", Discussion: discussion})
}

// DeleteDiscussion removes a discussion by id
// @Summary Delete discussion
// @Tags discussions
// @Accept json
// @Produce json
// @Param request body dto.IDRequest true "Discussion id"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse "Discussion id is required"
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/deleteDiscussion [delete]
func (dc *DiscussionController) DeleteDiscussion(c *gin.Context) {
	var req dto.IDRequest
	if !bindBody(c, &req) {
		return
	}

	if err := dc.discussionService.DeleteDiscussion(c.Request.Context(), req.ID); err != nil {
		middleware.HandleAPIError(c, err, "Error deleting discussion")
		return
	}
	deleted(c, "Discussion deleted successfully")
}

// ListComments returns every discussion comment
// @Summary List discussion comments
// @Tags admin
// @Produce json
// @Success 200 {array} models.DiscussionComment
// @Failure 404 {object} dto.MessageResponse "No comments found."
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/listDiscussionComments [get]
func (dc *DiscussionController) ListComments(c *gin.Context) {
	comments, err := dc.discussionService.ListComments(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// ViewComments returns the comments of one discussion
// @Summary View discussion comments
// @Tags discussions
// @Accept json
// @Produce json
// @Param request body dto.DiscussionCommentsRequest true "Discussion id"
// @Success 200 {array} models.DiscussionComment
// @Failure 400 {object} dto.MessageResponse "Discussion id is required"
// @Failure 404 {object} dto.MessageResponse "No comments found."
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/viewDiscussionComments [post]
func (dc *DiscussionController) ViewComments(c *gin.Context) {
	var req dto.DiscussionCommentsRequest
	if !bindBody(c, &req) {
		return
	}

	comments, err := dc.discussionService.ViewComments(c.Request.Context(), req.DisID)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// AddComment comments on a discussion
// @Summary Add discussion comment
// @Tags discussions
// @Accept json
// @Produce json
// @Param request body dto.DiscussionCommentRequest true "Comment"
// @Success 201 {object} dto.DiscussionCommentEnvelope
// @Router /user/addDiscussionComment [post]
func (dc *DiscussionController) AddComment(c *gin.Context) {
	var req dto.DiscussionCommentRequest
	if !bindBody(c, &req) {
		return
	}

	comment, err := dc.discussionService.AddComment(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error adding comment")
		return
	}
	c.JSON(http.StatusCreated, dto.DiscussionCommentEnvelope{Message: "Comment added successfully", Comment: comment})
}

// UpdateComment edits the text of a discussion comment
// @Summary Update discussion comment
// @Tags discussions
// @Accept json
// @Produce json
// @Param request body dto.DiscussionCommentRequest true "Comment id and description"
// @Success 200 {object} dto.DiscussionCommentEnvelope
// @Failure 400 {object} dto.MessageResponse "All required fields must be provided"
// @Failure 404 {object} dto.MessageResponse "Comment not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/updateDiscussionComment [put]
func (dc *DiscussionController) UpdateComment(c *gin.Context) {
	var req dto.DiscussionCommentRequest
	if !bindBody(c, &req) {
		return
	}

	comment, err := dc.discussionService.UpdateComment(c.Request.Context(), req.ID, req.Description)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error updating comment")
		return
	}
	c.JSON(http.StatusOK, dto.DiscussionCommentEnvelope{Message: "Comment updated successfully", Comment: comment})
}

// DeleteComment removes a discussion comment by id
// @Summary Delete discussion comment
// @Tags discussions
// @Accept json
// @Produce json
// @Param request body dto.IDRequest true "Comment id"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse "Comment id is required"
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/deleteDiscussionComment [delete]
func (dc *DiscussionController) DeleteComment(c *gin.Context) {
	var req dto.IDRequest
	if !bindBody(c, &req) {
		return
	}

	if err := dc.discussionService.DeleteComment(c.Request.Context(), req.ID); err != nil {
		middleware.HandleAPIError(c, err, "Error deleting comment")
		return
	}
	deleted(c, "Comment deleted successfully")
}
