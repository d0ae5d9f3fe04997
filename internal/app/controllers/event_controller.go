package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/app/services"
	"github.com/yigit/eduhub/internal/middleware"
)

// EventController handles events and their comments
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// ListEvents returns every event with its comment count
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} models.EventWithComments
// @Failure 404 {object} dto.MessageResponse "No events found."
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/listEvents [get]
func (ec *EventController) ListEvents(c *gin.Context) {
	events, err := ec.eventService.ListEvents(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching events")
		return
	}
	c.JSON(http.StatusOK, events)
}

// ViewEvent returns one event
// @Summary View event
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.IDRequest true "Event id"
// @Success 200 {object} models.Event
// @Failure 400 {object} dto.MessageResponse "Event id is required"
// @Failure 404 {object} dto.MessageResponse "No event found."
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/viewEvent [post]
func (ec *EventController) ViewEvent(c *gin.Context) {
	var req dto.IDRequest
	if !bindBody(c, &req) {
		return
	}

	event, err := ec.eventService.ViewEvent(c.Request.Context(), req.ID)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// AddEvent creates an event
// @Summary Add event
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.EventRequest true "Event"
// @Success 201 {object} dto.EventEnvelope
// @Failure 400 {object} dto.MessageResponse "All required fields must be provided"
// @Router /api/admin/addEvent [post]
func (ec *EventController) AddEvent(c *gin.Context) {
	var req dto.EventRequest
	if !bindBody(c, &req) {
		return
	}

	event, err := ec.eventService.AddEvent(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error adding event")
		return
	}
	c.JSON(http.StatusCreated, dto.EventEnvelope{Message: "Event added successfully", Event: event})
}

// UpdateEvent edits an event, keeping stored values for omitted optional fields
// @Summary Update event
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.EventRequest true "Event"
// @Success 200 {object} dto.EventEnvelope
// @Failure 400 {object} dto.MessageResponse "All required fields must be provided"
// @Failure 404 {object} dto.MessageResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/updateEvent [put]
func (ec *EventController) UpdateEvent(c *gin.Context) {
	var req dto.EventRequest
	if !bindBody(c, &req) {
		return
	}

	event, err := ec.eventService.UpdateEvent(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error updating event")
		return
	}
	c.JSON(http.StatusOK, dto.EventEnvelope{Message: "Event updated successfully", Event: event})
}

// DeleteEvent removes an event by id
// @Summary Delete event
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.IDRequest true "Event id"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse "Event id is required"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/deleteEvent [delete]
func (ec *EventController) DeleteEvent(c *gin.Context) {
	var req dto.IDRequest
	if !bindBody(c, &req) {
		return
	}

	if err := ec.eventService.DeleteEvent(c.Request.Context(), req.ID); err != nil {
		middleware.HandleAPIError(c, err, "Error deleting event")
		return
	}
	deleted(c, "Event deleted successfully")
}

// ListComments returns every event comment
// @Summary List event comments
// @Tags admin
// @Produce json
// @Success 200 {array} models.EventComment
// @Failure 404 {object} dto.MessageResponse "No comments found."
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/listEventComments [get]
func (ec *EventController) ListComments(c *gin.Context) {
	comments, err := ec.eventService.ListComments(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// ViewComments returns the comments of one event
// @Summary View event comments
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.EventCommentsRequest true "Event id"
// @Success 200 {array} models.EventComment
// @Failure 400 {object} dto.MessageResponse "Event id is required"
// @Failure 404 {object} dto.MessageResponse "No comments found."
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/viewEventComments [post]
func (ec *EventController) ViewComments(c *gin.Context) {
	var req dto.EventCommentsRequest
	if !bindBody(c, &req) {
		return
	}

	comments, err := ec.eventService.ViewComments(c.Request.Context(), req.EID)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// AddComment comments on an event
// @Summary Add event comment
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.EventCommentRequest true "Comment"
// @Success 201 {object} dto.EventCommentEnvelope
// @Failure 400 {object} dto.MessageResponse "All required fields must be provided"
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/addEventComment [post]
func (ec *EventController) AddComment(c *gin.Context) {
	var req dto.EventCommentRequest
	if !bindBody(c, &req) {
		return
	}

	comment, err := ec.eventService.AddComment(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error adding comment")
		return
	}
	c.JSON(http.StatusCreated, dto.EventCommentEnvelope{Message: "Comment added successfully", Comment: comment})
}

// DeleteComment removes an event comment by id
// @Summary Delete event comment
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.IDRequest true "Comment id"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse "Comment id is required"
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/deleteEventComment [delete]
func (ec *EventController) DeleteComment(c *gin.Context) {
	var req dto.IDRequest
	if !bindBody(c, &req) {
		return
	}

	if err := ec.eventService.DeleteComment(c.Request.Context(), req.ID); err != nil {
		middleware.HandleAPIError(c, err, "Error deleting comment")
		return
	}
	deleted(c, "Comment deleted successfully")
}
