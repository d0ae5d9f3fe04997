package migrations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/pkg/logger"
)

const migrationsCollection = "schema_migrations"

// Migration is one versioned change to the document store
type Migration struct {
	Version string
	Name    string
	Up      func(ctx context.Context, db *mongo.Database) error
}

// Migrator applies migrations in order and records the applied versions
type Migrator struct {
	db         *mongo.Database
	migrations []Migration
}

// NewMigrator creates a migrator over the built-in migrations
func NewMigrator(db *mongo.Database) *Migrator {
	return &Migrator{db: db, migrations: All()}
}

// All returns the document store migrations in apply order
func All() []Migration {
	return []Migration{
		{
			Version: "001",
			Name:    "unique user identity",
			Up: indexes(models.CollectionUsers,
				mongo.IndexModel{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uid_unique")},
				mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
			),
		},
		{
			Version: "002",
			Name:    "comment parent lookups",
			Up: func(ctx context.Context, db *mongo.Database) error {
				if err := indexes(models.CollectionDiscussionComments,
					mongo.IndexModel{Keys: bson.D{{Key: "disid", Value: 1}}},
				)(ctx, db); err != nil {
					return err
				}
				return indexes(models.CollectionEventComments,
					mongo.IndexModel{Keys: bson.D{{Key: "eid", Value: 1}}},
				)(ctx, db)
			},
		},
		{
			Version: "003",
			Name:    "discussions by author",
			Up: indexes(models.CollectionDiscussions,
				mongo.IndexModel{Keys: bson.D{{Key: "uid", Value: 1}}},
			),
		},
		{
			Version: "004",
			Name:    "course questions by chapter",
			Up: indexes(models.CollectionCourseQuestions,
				mongo.IndexModel{Keys: bson.D{{Key: "courseId", Value: 1}, {Key: "chapterId", Value: 1}, {Key: "createdAt", Value: -1}}},
			),
		},
	}
}

func indexes(collection string, specs ...mongo.IndexModel) func(ctx context.Context, db *mongo.Database) error {
	return func(ctx context.Context, db *mongo.Database) error {
		_, err := db.Collection(collection).Indexes().CreateMany(ctx, specs)
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
		return nil
	}
}

func (m *Migrator) isApplied(ctx context.Context, version string) (bool, error) {
	err := m.db.Collection(migrationsCollection).FindOne(ctx, bson.M{"version": version}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return true, nil
}

func (m *Migrator) record(ctx context.Context, migration Migration) error {
	_, err := m.db.Collection(migrationsCollection).InsertOne(ctx, bson.M{
		"version":   migration.Version,
		"name":      migration.Name,
		"appliedAt": time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}

// Migrate applies every migration not yet recorded
func (m *Migrator) Migrate(ctx context.Context) error {
	for _, migration := range m.migrations {
		applied, err := m.isApplied(ctx, migration.Version)
		if err != nil {
			return err
		}
		if applied {
			logger.Debug().Str("version", migration.Version).Msg("Migration already applied, skipping")
			continue
		}

		if err := migration.Up(ctx, m.db); err != nil {
			return fmt.Errorf("migration %s (%s): %w", migration.Version, migration.Name, err)
		}
		if err := m.record(ctx, migration); err != nil {
			return err
		}
		logger.Info().Str("version", migration.Version).Str("name", migration.Name).Msg("Migration applied")
	}
	return nil
}
