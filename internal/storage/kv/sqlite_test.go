package kv

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_Contract(t *testing.T) {
	runContract(t, func(t *testing.T) Repository {
		return NewSQLiteRepository(setupDB(t))
	})
}

func TestSQLiteRepository_SetNilStoresEmpty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", nil))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, v, "present key must not look absent")
	require.Empty(t, v)
}

func TestSQLiteRepository_UpdateRollsBackOnError(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	boom := errors.New("boom")

	require.NoError(t, r.Set(ctx, "k", []byte("old")))

	_, err := r.Update(ctx, "k", func(cur []byte) ([]byte, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "failed to update kv[k]")

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), v)
}

func TestSQLiteRepository_DBErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	v, err := r.Get(ctx, "k")
	require.Error(t, err)
	require.Nil(t, v)
	require.Contains(t, err.Error(), "failed to get kv[k]")

	err = r.Set(ctx, "k", []byte("v"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to set kv[k]")

	err = r.Delete(ctx, "k")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to delete kv[k]")

	err = r.Clear(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to clear kv")

	_, err = r.List(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to list kv")

	_, err = r.Update(ctx, "k", func(cur []byte) ([]byte, error) { return cur, nil })
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to update kv[k]")
}
