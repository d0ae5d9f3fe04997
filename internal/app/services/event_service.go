package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/pkg/apperrors"
)

// EventService defines the interface for event and event comment operations
type EventService interface {
	ListEvents(ctx context.Context) ([]*models.EventWithComments, error)
	ViewEvent(ctx context.Context, id string) (*models.Event, error)
	AddEvent(ctx context.Context, req *dto.EventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, req *dto.EventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	ListComments(ctx context.Context) ([]*models.EventComment, error)
	ViewComments(ctx context.Context, eventID string) ([]*models.EventComment, error)
	AddComment(ctx context.Context, req *dto.EventCommentRequest) (*models.EventComment, error)
	DeleteComment(ctx context.Context, id string) error
}

type eventServiceImpl struct {
	events   EventStore
	comments EventCommentStore
}

// NewEventService creates a new event service instance
func NewEventService(events EventStore, comments EventCommentStore) EventService {
	return &eventServiceImpl{events: events, comments: comments}
}

// ListEvents returns every event with its comment count attached. The count
// lives only in the response; event documents are not written.
func (s *eventServiceImpl) ListEvents(ctx context.Context) ([]*models.EventWithComments, error) {
	events, err := s.events.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, apperrors.NewResourceNotFoundError("No events found.")
	}

	result := make([]*models.EventWithComments, len(events))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichLimit)
	for i, e := range events {
		g.Go(func() error {
			count, err := s.comments.CountByEvent(gctx, e.ID.Hex())
			if err != nil {
				return err
			}
			result[i] = &models.EventWithComments{Event: *e, Comments: count}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *eventServiceImpl) ViewEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "No event found.")
	}
	return event, nil
}

func (s *eventServiceImpl) AddEvent(ctx context.Context, req *dto.EventRequest) (*models.Event, error) {
	event := eventFromRequest(req)
	event.UID = req.UID
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventServiceImpl) UpdateEvent(ctx context.Context, req *dto.EventRequest) (*models.Event, error) {
	event, err := s.events.Update(ctx, req.ID, eventFromRequest(req))
	if err != nil {
		return nil, notFound(err, "Event not found")
	}
	return event, nil
}

func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}

func (s *eventServiceImpl) ListComments(ctx context.Context) ([]*models.EventComment, error) {
	comments, err := s.comments.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, apperrors.NewResourceNotFoundError("No comments found.")
	}
	return comments, nil
}

func (s *eventServiceImpl) ViewComments(ctx context.Context, eventID string) ([]*models.EventComment, error) {
	comments, err := s.comments.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, apperrors.NewResourceNotFoundError("No comments found.")
	}
	return comments, nil
}

func (s *eventServiceImpl) AddComment(ctx context.Context, req *dto.EventCommentRequest) (*models.EventComment, error) {
	comment := &models.EventComment{
		EID:   req.EID,
		UID:   req.UID,
		Name:  req.Name,
		Text:  req.Text,
		Email: req.Email,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *eventServiceImpl) DeleteComment(ctx context.Context, id string) error {
	return s.comments.Delete(ctx, id)
}

func eventFromRequest(req *dto.EventRequest) *models.Event {
	return &models.Event{
		Title:       req.Title,
		Date:        req.Date,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		URL:         req.URL,
		Image:       req.Image,
		Status:      req.Status,
	}
}
