package memory

import (
	"context"
	"schanctl/internal/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyStoreContract(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.GetFlag(ctx, "a/b")
	assert.ErrorIs(t, err, types.ErrNotFound)

	require.NoError(t, s.SetFlag(ctx, "a/b", 1))
	v, err := s.GetFlag(ctx, "a/b")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), v)

	// Overwrite
	require.NoError(t, s.SetFlag(ctx, "a/b", 0))
	v, err = s.GetFlag(ctx, "a/b")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v)

	require.NoError(t, s.DeleteKey(ctx, "a/b"))
	assert.ErrorIs(t, s.DeleteKey(ctx, "a/b"), types.ErrNotFound)
}

func TestKeyStoreClearAll(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.SetFlag(ctx, "a", 1))
	require.NoError(t, s.SetFlag(ctx, "b", 1))
	require.NoError(t, s.ClearAll(ctx))
	assert.Equal(t, 0, s.Len())
}

func TestKeyStoreFailOn(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.FailOn = "bad/path"

	_, err := s.GetFlag(ctx, "bad/path")
	assert.ErrorIs(t, err, types.ErrStoreAccess)
	assert.ErrorIs(t, s.SetFlag(ctx, "bad/path", 1), types.ErrStoreAccess)
	assert.ErrorIs(t, s.DeleteKey(ctx, "bad/path"), types.ErrStoreAccess)

	// Other paths unaffected.
	require.NoError(t, s.SetFlag(ctx, "ok/path", 1))
}
