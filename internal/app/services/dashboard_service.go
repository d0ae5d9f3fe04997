package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yigit/eduhub/internal/app/models"
)

// DashboardService defines the interface for the admin dashboard
type DashboardService interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

// DashboardCounters are the stores summed up on the dashboard. Courses is the
// relational store; the rest are document collections.
type DashboardCounters struct {
	Discussions        Counter
	Users              Counter
	Courses            Counter
	Events             Counter
	DiscussionComments Counter
	EventComments      Counter
}

type dashboardServiceImpl struct {
	counters DashboardCounters
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(counters DashboardCounters) DashboardService {
	return &dashboardServiceImpl{counters: counters}
}

// GetStats runs every count concurrently. The first failure cancels the rest
// and no partial stats are returned.
func (s *dashboardServiceImpl) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)
	count := func(c Counter, dst *int64) {
		g.Go(func() error {
			n, err := c.Count(gctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count(s.counters.Discussions, &stats.DiscussionCount)
	count(s.counters.Users, &stats.UserCount)
	count(s.counters.Courses, &stats.CourseCount)
	count(s.counters.Events, &stats.EventCount)
	count(s.counters.DiscussionComments, &stats.DisCommentCount)
	count(s.counters.EventComments, &stats.EventCommentCount)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.CommentCount = stats.DisCommentCount + stats.EventCommentCount
	return stats, nil
}
