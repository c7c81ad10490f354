package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesSchemaAndKVTableIsUsable(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "campushire.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES ('campushire_jobs', '[]')`)
	require.NoError(t, err)

	var value string
	err = db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = 'campushire_jobs'`).Scan(&value)
	require.NoError(t, err)
	require.Equal(t, "[]", value)
}

func TestOpen_IsIdempotentAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "campushire.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES ('k', 'v')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening runs migrations again; existing data survives.
	db, err = Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var value string
	err = db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = 'k'`).Scan(&value)
	require.NoError(t, err)
	require.Equal(t, "v", value)
}
