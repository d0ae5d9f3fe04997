package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/pkg/apperrors"
)

// enrichLimit bounds the per-item count queries issued by one list request
const enrichLimit = 16

// DiscussionService defines the interface for discussion and discussion comment operations
type DiscussionService interface {
	ListDiscussions(ctx context.Context) ([]*models.Discussion, error)
	MyDiscussions(ctx context.Context, uid string) ([]*models.Discussion, error)
	ViewDiscussion(ctx context.Context, id string) (*models.Discussion, error)
	AddDiscussion(ctx context.Context, req *dto.DiscussionRequest) (*models.Discussion, error)
	UpdateDiscussion(ctx context.Context, req *dto.DiscussionRequest) (*models.Discussion, error)
	DeleteDiscussion(ctx context.Context, id string) error

	ListComments(ctx context.Context) ([]*models.DiscussionComment, error)
	ViewComments(ctx context.Context, disID string) ([]*models.DiscussionComment, error)
	AddComment(ctx context.Context, req *dto.DiscussionCommentRequest) (*models.DiscussionComment, error)
	UpdateComment(ctx context.Context, id, description string) (*models.DiscussionComment, error)
	DeleteComment(ctx context.Context, id string) error
}

type discussionServiceImpl struct {
	discussions DiscussionStore
	comments    DiscussionCommentStore
}

// NewDiscussionService creates a new discussion service instance
func NewDiscussionService(discussions DiscussionStore, comments DiscussionCommentStore) DiscussionService {
	return &discussionServiceImpl{discussions: discussions, comments: comments}
}

// ListDiscussions returns every discussion with its comment count recomputed.
// Only changed counts are written back. Any failing count or write fails the whole request.
func (s *discussionServiceImpl) ListDiscussions(ctx context.Context) ([]*models.Discussion, error) {
	discussions, err := s.discussions.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(discussions) == 0 {
		return nil, apperrors.NewResourceNotFoundError("No discussions found.")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichLimit)
	for _, d := range discussions {
		g.Go(func() error {
			count, err := s.comments.CountByDiscussion(gctx, d.ID.Hex())
			if err != nil {
				return err
			}
			if d.Comments == count {
				return nil
			}
			d.Comments = count
			return s.discussions.SaveCommentCount(gctx, d.ID, count)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return discussions, nil
}

func (s *discussionServiceImpl) MyDiscussions(ctx context.Context, uid string) ([]*models.Discussion, error) {
	discussions, err := s.discussions.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if len(discussions) == 0 {
		return nil, apperrors.NewResourceNotFoundError("No discussions found.")
	}
	return discussions, nil
}

func (s *discussionServiceImpl) ViewDiscussion(ctx context.Context, id string) (*models.Discussion, error) {
	discussion, err := s.discussions.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "No discussion found.")
	}
	return discussion, nil
}

func (s *discussionServiceImpl) AddDiscussion(ctx context.Context, req *dto.DiscussionRequest) (*models.Discussion, error) {
	discussion := &models.Discussion{
		UID:         req.UID,
		Name:        req.Name,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Email:       req.Email,
	}
	if err := s.discussions.Create(ctx, discussion); err != nil {
		return nil, err
	}
	return discussion, nil
}

func (s *discussionServiceImpl) UpdateDiscussion(ctx context.Context, req *dto.DiscussionRequest) (*models.Discussion, error) {
	discussion, err := s.discussions.Update(ctx, req.ID, &models.Discussion{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return nil, notFound(err, "Discussion not found")
	}
	return discussion, nil
}

func (s *discussionServiceImpl) DeleteDiscussion(ctx context.Context, id string) error {
	return s.discussions.Delete(ctx, id)
}

func (s *discussionServiceImpl) ListComments(ctx context.Context) ([]*models.DiscussionComment, error) {
	comments, err := s.comments.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, apperrors.NewResourceNotFoundError("No comments found.")
	}
	return comments, nil
}

func (s *discussionServiceImpl) ViewComments(ctx context.Context, disID string) ([]*models.DiscussionComment, error) {
	comments, err := s.comments.FindByDiscussion(ctx, disID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, apperrors.NewResourceNotFoundError("No comments found.")
	}
	return comments, nil
}

// AddComment stores a comment. The parent's counter catches up on the next list.
func (s *discussionServiceImpl) AddComment(ctx context.Context, req *dto.DiscussionCommentRequest) (*models.DiscussionComment, error) {
	comment := &models.DiscussionComment{
		DisID:       req.DisID,
		UID:         req.UID,
		Name:        req.Name,
		Description: req.Description,
		Email:       req.Email,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *discussionServiceImpl) UpdateComment(ctx context.Context, id, description string) (*models.DiscussionComment, error) {
	comment, err := s.comments.Update(ctx, id, description)
	if err != nil {
		return nil, notFound(err, "Comment not found")
	}
	return comment, nil
}

func (s *discussionServiceImpl) DeleteComment(ctx context.Context, id string) error {
	return s.comments.Delete(ctx, id)
}
