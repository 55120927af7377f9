package main

import (
	"context"
	"net"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunServe_ReturnsWhenPortIsTaken(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	t.Setenv("HTTP_PORT", strconv.Itoa(port))
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", "file:"+filepath.Join(t.TempDir(), "serve.db"))
	t.Setenv("SESSION_BACKEND", "sql")
	t.Setenv("TRACING_EXPORTER", "none")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	root := newRootCommand()
	root.SetArgs([]string{"serve"})
	err = root.ExecuteContext(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start server")
	assert.NoError(t, ctx.Err(), "serve must not wait for a signal after a failed start")
}
