package cartstore

import (
	"context"
	"testing"

	"alu_portal/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStorage(t *testing.T, s interfaces.ICartStorage) {
	t.Helper()
	ctx := context.Background()

	_, found, err := s.Read(ctx, "alu-cart:missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Write(ctx, "alu-cart:default", `[{"productId":"p-1"}]`))
	v, found, err := s.Read(ctx, "alu-cart:default")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"productId":"p-1"}]`, v)

	require.NoError(t, s.Write(ctx, "alu-cart:default", `[]`))
	v, _, err = s.Read(ctx, "alu-cart:default")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemoryStorage())
}

func TestPebbleStorage(t *testing.T) {
	s, err := NewPebbleStorage(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStorage(t, s)
}

func TestPebbleStorage_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewPebbleStorage(dir)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, "alu-cart:s1", `[]`))
	require.NoError(t, s.Close())

	s, err = NewPebbleStorage(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	v, found, err := s.Read(ctx, "alu-cart:s1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, v)
}
