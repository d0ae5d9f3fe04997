package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/db"
	"github.com/yigit/eduhub/internal/pkg/logger"
)

// CourseRepository reads the relational course catalog. Every call acquires
// its own connection and releases it before returning.
type CourseRepository struct {
	connector db.Connector
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(connector db.Connector) *CourseRepository {
	return &CourseRepository{connector: connector}
}

// Count returns the number of rows in the course table
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := squirrel.Select("COUNT(*) AS courseCount").From("course").ToSql()
	if err != nil {
		return 0, err
	}

	conn, err := r.connector.Connect(ctx)
	if err != nil {
		return 0, err
	}
	defer release(conn)

	var count int64
	if err := conn.GetContext(ctx, &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

// ListCategories returns every course category ordered by name
func (r *CourseRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	query, args, err := squirrel.Select("id", "name").From("category").OrderBy("name").ToSql()
	if err != nil {
		return nil, err
	}

	conn, err := r.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer release(conn)

	categories := []*models.Category{}
	if err := conn.SelectContext(ctx, &categories, query, args...); err != nil {
		return nil, err
	}
	return categories, nil
}

func release(conn db.SQLConn) {
	if err := conn.Close(); err != nil {
		logger.Warn().Err(err).Msg("Error releasing mysql connection")
	}
}
