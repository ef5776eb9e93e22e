package blob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	payload := []byte("%PDF-1.4 fake")
	require.NoError(t, store.Put(ctx, "abc.pdf", payload, "application/pdf"))

	got, err := store.Get(ctx, "abc.pdf")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	require.NoError(t, store.Delete(ctx, "abc.pdf"))
	_, err = store.Get(ctx, "abc.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStoreGetMissing(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	_, err := store.Get(context.Background(), "nope.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStoreDeleteMissingIsNoop(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	assert.NoError(t, store.Delete(context.Background(), "nope.pdf"))
}

func TestLocalStoreStripsPathComponents(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewLocalStore(dir)

	require.NoError(t, store.Put(ctx, "../escape.txt", []byte("x"), "text/plain"))
	got, err := store.Get(ctx, "escape.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), got)
}
