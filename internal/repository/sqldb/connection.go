package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/Om-mac/multiple-shop-analysis/database"
)

const (
	// DriverSQLite stores everything in a single local file.
	DriverSQLite = "sqlite"
	// DriverPostgres talks to PostgreSQL through pgx.
	DriverPostgres = "postgres"
)

const pgUniqueViolation = "23505"

type Connection struct {
	*sql.DB
	driver string
}

// NewConnection opens the database, applies migrations and returns a ready Connection.
func NewConnection(ctx context.Context, driver, dsn string) (*Connection, error) {
	var sqlDriver string
	switch driver {
	case DriverSQLite:
		sqlDriver = "sqlite"
	case DriverPostgres:
		sqlDriver = "pgx"
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		// one writer at a time keeps SQLite away from SQLITE_BUSY
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return NewConnectionFromDB(db, driver), nil
}

// NewConnectionFromDB wraps an already opened *sql.DB without running migrations.
func NewConnectionFromDB(db *sql.DB, driver string) *Connection {
	return &Connection{
		DB:     db,
		driver: driver,
	}
}

func (c *Connection) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

func (c *Connection) Ping(ctx context.Context) error {
	if c.DB == nil {
		return fmt.Errorf("database is not open")
	}
	return c.DB.PingContext(ctx)
}

// Driver returns the dialect name the connection was opened with.
func (c *Connection) Driver() string {
	return c.driver
}

// Rebind rewrites ? placeholders into the numbered form PostgreSQL expects.
func (c *Connection) Rebind(query string) string {
	if c.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "UNIQUE")
	}

	return false
}
