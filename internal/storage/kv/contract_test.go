package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract checks the behavior every Repository must share.
func runContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	t.Run("set then get", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "k1", []byte(`[{"id":"1"}]`)))

		v, err := r.Get(ctx, "k1")
		require.NoError(t, err)
		require.Equal(t, []byte(`[{"id":"1"}]`), v)
	})

	t.Run("absent key returns nil nil", func(t *testing.T) {
		r := newRepo(t)

		v, err := r.Get(context.Background(), "absent")
		require.NoError(t, err)
		require.Nil(t, v)
	})

	t.Run("empty value is present not absent", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "empty", []byte{}))
		require.NoError(t, r.Set(ctx, "nil", nil))

		for _, k := range []string{"empty", "nil"} {
			v, err := r.Get(ctx, k)
			require.NoError(t, err)
			require.NotNil(t, v, k)
			require.Empty(t, v, k)
		}

		m, err := r.List(ctx)
		require.NoError(t, err)
		require.NotNil(t, m["empty"])
		require.NotNil(t, m["nil"])
	})

	t.Run("set overwrites", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "k", []byte("old")))
		require.NoError(t, r.Set(ctx, "k", []byte("new")))

		v, err := r.Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, []byte("new"), v)
	})

	t.Run("list returns all pairs", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "a", []byte{0xAA}))
		require.NoError(t, r.Set(ctx, "b", []byte{0xBB, 0xCC}))

		m, err := r.List(ctx)
		require.NoError(t, err)
		assert.Len(t, m, 2)
		assert.Equal(t, []byte{0xAA}, m["a"])
		assert.Equal(t, []byte{0xBB, 0xCC}, m["b"])
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "x", []byte{0x01}))
		require.NoError(t, r.Delete(ctx, "x"))

		v, err := r.Get(ctx, "x")
		require.NoError(t, err)
		require.Nil(t, v)

		require.NoError(t, r.Delete(ctx, "x"))
	})

	t.Run("clear removes everything", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "a", []byte{1}))
		require.NoError(t, r.Set(ctx, "b", []byte{2}))
		require.NoError(t, r.Clear(ctx))

		m, err := r.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, m)
	})

	t.Run("update sees current value", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		var seen [][]byte
		appendX := func(cur []byte) ([]byte, error) {
			seen = append(seen, cur)
			return append(cur, 'x'), nil
		}

		got, err := r.Update(ctx, "counter", appendX)
		require.NoError(t, err)
		assert.Equal(t, []byte("x"), got)

		got, err = r.Update(ctx, "counter", appendX)
		require.NoError(t, err)
		assert.Equal(t, []byte("xx"), got)

		require.Len(t, seen, 2)
		assert.Nil(t, seen[0], "first update must see an absent key")
		assert.Equal(t, []byte("x"), seen[1])

		v, err := r.Get(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, []byte("xx"), v)
	})
}
