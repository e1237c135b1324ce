package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gjaolabs/boilerplate-project-exercisetracker/internal/tracker"
)

// MemoryUserRepository is an in-memory UserRepository used by unit tests and
// as the fallback store when MongoDB is unavailable at startup.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*tracker.User
	order []string
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]*tracker.User)}
}

func (m *MemoryUserRepository) Create(ctx context.Context, u *tracker.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID == "" {
		u.ID = primitive.NewObjectID().Hex()
	}
	m.users[u.ID] = u
	m.order = append(m.order, u.ID)
	return nil
}

func (m *MemoryUserRepository) Get(ctx context.Context, id string) (*tracker.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryUserRepository) List(ctx context.Context) ([]*tracker.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*tracker.User, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.users[id])
	}
	return out, nil
}

// MemoryExerciseRepository is the in-memory counterpart of the Mongo exercise
// repository. Listing preserves insertion order.
type MemoryExerciseRepository struct {
	mu        sync.RWMutex
	exercises []*tracker.Exercise
}

func NewMemoryExerciseRepository() *MemoryExerciseRepository {
	return &MemoryExerciseRepository{}
}

func (m *MemoryExerciseRepository) Create(ctx context.Context, e *tracker.Exercise) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID == "" {
		e.ID = primitive.NewObjectID().Hex()
	}
	m.exercises = append(m.exercises, e)
	return nil
}

func (m *MemoryExerciseRepository) ListByUser(ctx context.Context, userID string, f LogFilter) ([]*tracker.Exercise, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*tracker.Exercise{}
	for _, e := range m.exercises {
		if e.UserID != userID {
			continue
		}
		if f.From != nil && e.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && e.Date.After(*f.To) {
			continue
		}
		out = append(out, e)
		if f.Limit > 0 && int64(len(out)) == f.Limit {
			break
		}
	}
	return out, nil
}
