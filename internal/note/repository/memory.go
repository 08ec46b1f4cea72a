package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/notekeep/notekeep/internal/note"
)

// MemoryRepo is a map-backed repository used when no MongoDB URI is
// configured, and by unit tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]note.Note
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]note.Note)}
}

func (m *MemoryRepo) Create(ctx context.Context, n note.Note) (note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n.ID = uuid.New().String()
	m.store[n.ID] = n
	return n, nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (note.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.store[id]
	if !ok {
		return note.Note{}, ErrNotFound
	}
	return n, nil
}

func (m *MemoryRepo) Update(ctx context.Context, n note.Note) (note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[n.ID]; !ok {
		return note.Note{}, ErrNotFound
	}
	m.store[n.ID] = n
	return n, nil
}

func (m *MemoryRepo) ListActive(ctx context.Context) ([]note.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]note.Note, 0, len(m.store))
	for _, n := range m.store {
		if n.IsActive {
			out = append(out, n)
		}
	}
	// most recently updated first; id breaks ties so the order is deterministic
	sort.Slice(out, func(i, j int) bool {
		if !out[i].LastUpdatedAt.Equal(out[j].LastUpdatedAt) {
			return out[i].LastUpdatedAt.After(out[j].LastUpdatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
