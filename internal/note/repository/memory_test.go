package repository

import (
	"context"
	"testing"
	"time"

	"github.com/notekeep/notekeep/internal/note"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	created, err := r.Create(ctx, note.Note{Title: "groceries", Content: "milk, eggs", IsActive: true, LastUpdatedAt: time.Now()})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := r.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "milk, eggs", got.Content)

	got.Content = "milk, eggs, bread"
	updated, err := r.Update(ctx, got)
	require.NoError(t, err)
	require.Equal(t, "milk, eggs, bread", updated.Content)

	got2, err := r.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "milk, eggs, bread", got2.Content)

	_, err = r.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = r.Update(ctx, note.Note{ID: "missing"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepoListActive(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	base := time.Now().UTC()
	older, err := r.Create(ctx, note.Note{Title: "older", IsActive: true, LastUpdatedAt: base.Add(-time.Hour)})
	require.NoError(t, err)
	newer, err := r.Create(ctx, note.Note{Title: "newer", IsActive: true, LastUpdatedAt: base})
	require.NoError(t, err)
	inactive, err := r.Create(ctx, note.Note{Title: "gone", IsActive: false, LastUpdatedAt: base.Add(time.Hour)})
	require.NoError(t, err)

	list, err := r.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, newer.ID, list[0].ID)
	require.Equal(t, older.ID, list[1].ID)
	for _, n := range list {
		require.NotEqual(t, inactive.ID, n.ID)
		require.True(t, n.IsActive)
	}

	// inactive records stay addressable by id
	got, err := r.Get(ctx, inactive.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)
}
