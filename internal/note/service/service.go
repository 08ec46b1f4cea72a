package service

import (
	"context"
	"errors"
	"time"

	"github.com/notekeep/notekeep/internal/note"
	"github.com/notekeep/notekeep/internal/note/repository"
)

var (
	ErrNotFound = errors.New("not found")
)

// Service defines the note operations used by the handler layer.
// Timestamps and the soft-delete flag are owned here: repositories
// persist records as given, the service decides what goes into them.
type Service interface {
	Create(ctx context.Context, title, content string) (note.Note, error)
	Get(ctx context.Context, id string) (note.Note, error)
	Replace(ctx context.Context, id, title, content string) (note.Note, error)
	Patch(ctx context.Context, id string, title, content *string) (note.Note, error)
	Delete(ctx context.Context, id string) (note.Note, error)
	List(ctx context.Context) ([]note.Note, error)
}

// NewService returns a Service backed by the given repository.
func NewService(repo repository.NoteRepository) Service {
	return &noteService{repo: repo}
}

type noteService struct {
	repo repository.NoteRepository
}

func (s *noteService) Create(ctx context.Context, title, content string) (note.Note, error) {
	n := note.Note{
		Title:         title,
		Content:       content,
		LastUpdatedAt: time.Now().UTC(),
		IsActive:      true,
	}
	return s.repo.Create(ctx, n)
}

func (s *noteService) Get(ctx context.Context, id string) (note.Note, error) {
	n, err := s.repo.Get(ctx, id)
	if err != nil {
		return note.Note{}, mapErr(err)
	}
	return n, nil
}

// Replace overwrites title and content with the supplied representation
// and refreshes the timestamp even when the values are unchanged. The
// active flag is carried over untouched.
func (s *noteService) Replace(ctx context.Context, id, title, content string) (note.Note, error) {
	n, err := s.repo.Get(ctx, id)
	if err != nil {
		return note.Note{}, mapErr(err)
	}
	n.Title = title
	n.Content = content
	n.LastUpdatedAt = time.Now().UTC()
	updated, err := s.repo.Update(ctx, n)
	if err != nil {
		return note.Note{}, mapErr(err)
	}
	return updated, nil
}

// Patch overwrites only the fields present in the request; nil means
// "not supplied". The timestamp moves regardless of which fields did.
func (s *noteService) Patch(ctx context.Context, id string, title, content *string) (note.Note, error) {
	n, err := s.repo.Get(ctx, id)
	if err != nil {
		return note.Note{}, mapErr(err)
	}
	if title != nil {
		n.Title = *title
	}
	if content != nil {
		n.Content = *content
	}
	n.LastUpdatedAt = time.Now().UTC()
	updated, err := s.repo.Update(ctx, n)
	if err != nil {
		return note.Note{}, mapErr(err)
	}
	return updated, nil
}

// Delete marks the note inactive. This is the only writer of
// IsActive=false and nothing ever writes it back to true. The record
// stays retrievable by id; only List hides it.
func (s *noteService) Delete(ctx context.Context, id string) (note.Note, error) {
	n, err := s.repo.Get(ctx, id)
	if err != nil {
		return note.Note{}, mapErr(err)
	}
	n.IsActive = false
	n.LastUpdatedAt = time.Now().UTC()
	updated, err := s.repo.Update(ctx, n)
	if err != nil {
		return note.Note{}, mapErr(err)
	}
	return updated, nil
}

func (s *noteService) List(ctx context.Context) ([]note.Note, error) {
	return s.repo.ListActive(ctx)
}

func mapErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
