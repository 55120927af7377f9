package sqldb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConnection(t *testing.T, driver string) (*Connection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewConnectionFromDB(db, driver), mock
}

func TestConnection_Rebind(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		query  string
		want   string
	}{
		{
			name:   "sqlite keeps question marks",
			driver: DriverSQLite,
			query:  "SELECT * FROM sales WHERE user_id = ? AND id = ?",
			want:   "SELECT * FROM sales WHERE user_id = ? AND id = ?",
		},
		{
			name:   "postgres numbers placeholders",
			driver: DriverPostgres,
			query:  "SELECT * FROM sales WHERE user_id = ? AND id = ?",
			want:   "SELECT * FROM sales WHERE user_id = $1 AND id = $2",
		},
		{
			name:   "postgres without placeholders",
			driver: DriverPostgres,
			query:  "SELECT 1",
			want:   "SELECT 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := NewConnectionFromDB(nil, tt.driver)
			assert.Equal(t, tt.want, conn.Rebind(tt.query))
		})
	}
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	_, err := NewConnection(context.Background(), "mysql", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")
}

func TestNewConnection_SQLiteFile(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "sales.db") + "?_pragma=foreign_keys(1)"

	conn, err := NewConnection(ctx, DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	assert.Equal(t, DriverSQLite, conn.Driver())
	require.NoError(t, conn.Ping(ctx))

	var count int
	err = conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'sales', 'sessions')`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestConnection_PingClosed(t *testing.T) {
	conn := NewConnectionFromDB(nil, DriverSQLite)
	require.Error(t, conn.Ping(context.Background()))
	require.NoError(t, conn.Close())
}
