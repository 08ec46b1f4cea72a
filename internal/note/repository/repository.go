package repository

import (
	"context"
	"errors"

	"github.com/notekeep/notekeep/internal/note"
)

// ErrNotFound is returned when an id resolves to no stored note.
var ErrNotFound = errors.New("note not found")

// NoteRepository defines persistence operations for notes. There is no
// physical delete: soft deletion goes through Update, and ListActive is
// the only read that hides inactive records.
type NoteRepository interface {
	// Create stores a new note, assigns its id and returns the stored record.
	Create(ctx context.Context, n note.Note) (note.Note, error)

	// Get returns the note with the given id regardless of its active state.
	Get(ctx context.Context, id string) (note.Note, error)

	// Update overwrites the stored note with the given record (matched by id).
	Update(ctx context.Context, n note.Note) (note.Note, error)

	// ListActive returns all active notes ordered by lastUpdatedAt descending.
	ListActive(ctx context.Context) ([]note.Note, error)
}
