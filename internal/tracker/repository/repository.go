package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gjaolabs/boilerplate-project-exercisetracker/internal/tracker"
)

var ErrNotFound = errors.New("record not found")

// LogFilter narrows an exercise listing. Nil bounds are open; both bounds are
// inclusive. Limit <= 0 means no cap.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int64
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, u *tracker.User) error
	Get(ctx context.Context, id string) (*tracker.User, error)
	List(ctx context.Context) ([]*tracker.User, error)
}

// ExerciseRepository defines persistence operations for exercises.
type ExerciseRepository interface {
	Create(ctx context.Context, e *tracker.Exercise) error
	ListByUser(ctx context.Context, userID string, f LogFilter) ([]*tracker.Exercise, error)
}
