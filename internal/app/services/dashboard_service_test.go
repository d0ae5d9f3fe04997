package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/app/services/mocks"
)

func counter(n int64, err error) *mocks.Counter {
	c := new(mocks.Counter)
	c.On("Count", mock.Anything).Return(n, err)
	return c
}

func TestDashboardStats(t *testing.T) {
	svc := NewDashboardService(DashboardCounters{
		Discussions:        counter(4, nil),
		Users:              counter(10, nil),
		Courses:            counter(3, nil),
		Events:             counter(2, nil),
		DiscussionComments: counter(7, nil),
		EventComments:      counter(5, nil),
	})

	stats, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &models.DashboardStats{
		DiscussionCount:   4,
		UserCount:         10,
		CourseCount:       3,
		EventCount:        2,
		CommentCount:      12,
		DisCommentCount:   7,
		EventCommentCount: 5,
	}, stats)
}

func TestDashboardStatsAllOrNothing(t *testing.T) {
	svc := NewDashboardService(DashboardCounters{
		Discussions:        counter(4, nil),
		Users:              counter(10, nil),
		Courses:            counter(0, errors.New("connect ECONNREFUSED")),
		Events:             counter(2, nil),
		DiscussionComments: counter(7, nil),
		EventComments:      counter(5, nil),
	})

	stats, err := svc.GetStats(context.Background())

	assert.Nil(t, stats)
	assert.EqualError(t, err, "connect ECONNREFUSED")
}
