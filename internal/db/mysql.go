package db

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/yigit/eduhub/internal/config"
	"github.com/yigit/eduhub/internal/pkg/helpers"
)

// SQLConn is a single relational connection scoped to one request.
// *sqlx.Conn satisfies it.
type SQLConn interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Close() error
}

// Connector hands out scoped relational connections
type Connector interface {
	Connect(ctx context.Context) (SQLConn, error)
}

// MySQLDB wraps the relational course catalog
type MySQLDB struct {
	DB *sqlx.DB
}

// NewMySQLDB opens the relational store. With the default MaxIdleConns of 0 a
// released connection is closed instead of parked in the pool.
func NewMySQLDB(cfg *config.Config) (*MySQLDB, error) {
	database, err := sqlx.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql: %w", err)
	}

	database.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	database.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	database.SetConnMaxLifetime(helpers.ParseDuration(cfg.MySQL.ConnMaxLifetime, 5*time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.PingContext(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to establish mysql connection: %w", err)
	}

	return &MySQLDB{DB: database}, nil
}

// Connect acquires a dedicated connection; the caller must Close it
func (m *MySQLDB) Connect(ctx context.Context) (SQLConn, error) {
	conn, err := m.DB.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire mysql connection: %w", err)
	}
	return conn, nil
}

// Ping checks that the relational store is reachable
func (m *MySQLDB) Ping(ctx context.Context) error {
	return m.DB.PingContext(ctx)
}

// Close closes the underlying handle
func (m *MySQLDB) Close() error {
	if m.DB == nil {
		return nil
	}
	return m.DB.Close()
}
