package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gjaolabs/boilerplate-project-exercisetracker/internal/tracker"
	"github.com/gjaolabs/boilerplate-project-exercisetracker/internal/tracker/repository"
)

// ErrUserNotFound reports an unknown user id on exercise and log operations.
var ErrUserNotFound = errors.New("user not found")

// ValidationError marks bad caller input; the handler maps it to a 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	// wire format of from/to/date request fields
	dateLayout = "2006-01-02"
	// weekday rendering used in exercise and log responses, e.g. "Mon Jan 01 1990"
	dateStringLayout = "Mon Jan 02 2006"

	defaultLogLimit = 100
)

// Service implements the tracker business rules over the repositories.
type Service struct {
	users     repository.UserRepository
	exercises repository.ExerciseRepository
	now       func() time.Time
}

func New(users repository.UserRepository, exercises repository.ExerciseRepository) *Service {
	return &Service{users: users, exercises: exercises, now: time.Now}
}

// CreateUser persists a new user. Username is the only required field and has
// no uniqueness constraint.
func (s *Service) CreateUser(ctx context.Context, username string) (*tracker.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ValidationError("username is required")
	}
	u := &tracker.User{Username: username}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*tracker.User, error) {
	return s.users.List(ctx)
}

// AddExerciseInput carries the raw form fields of an add-exercise request.
// Duration and Date are kept as strings so coercion failures surface as
// validation errors rather than bind errors.
type AddExerciseInput struct {
	Description string
	Duration    string
	Date        string // yyyy-mm-dd, empty means today
}

// ExerciseSummary is the response shape after logging an exercise: the owning
// user's identity combined with the exercise fields, date as a weekday string.
type ExerciseSummary struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

func (s *Service) AddExercise(ctx context.Context, userID string, in AddExerciseInput) (*ExerciseSummary, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	duration, err := strconv.Atoi(in.Duration)
	if err != nil {
		return nil, ValidationError("duration must be an integer")
	}
	date, err := s.exerciseDate(in.Date)
	if err != nil {
		return nil, err
	}
	e := &tracker.Exercise{
		UserID:      u.ID,
		Description: in.Description,
		Duration:    duration,
		Date:        date,
	}
	if err := s.exercises.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("save exercise: %w", err)
	}
	return &ExerciseSummary{
		ID:          u.ID,
		Username:    u.Username,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date.Format(dateStringLayout),
	}, nil
}

// LogQuery carries the raw query parameters of a log request.
type LogQuery struct {
	From  string
	To    string
	Limit string
}

type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// UserLog is the response shape of the logs endpoint.
type UserLog struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"id"`
	Log      []LogEntry `json:"log"`
}

// UserLog returns the user's exercises, bounded inclusively by from/to when
// given and capped at limit (default 100 when absent or not positive).
func (s *Service) UserLog(ctx context.Context, userID string, q LogQuery) (*UserLog, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	f := repository.LogFilter{Limit: defaultLogLimit}
	if q.From != "" {
		d, err := time.Parse(dateLayout, q.From)
		if err != nil {
			return nil, ValidationError("from must be yyyy-mm-dd")
		}
		f.From = &d
	}
	if q.To != "" {
		d, err := time.Parse(dateLayout, q.To)
		if err != nil {
			return nil, ValidationError("to must be yyyy-mm-dd")
		}
		f.To = &d
	}
	if q.Limit != "" {
		n, err := strconv.Atoi(q.Limit)
		if err != nil {
			return nil, ValidationError("limit must be an integer")
		}
		if n > 0 {
			f.Limit = int64(n)
		}
	}
	list, err := s.exercises.ListByUser(ctx, u.ID, f)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	entries := make([]LogEntry, 0, len(list))
	for _, e := range list {
		entries = append(entries, LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date.Format(dateStringLayout),
		})
	}
	return &UserLog{Username: u.Username, Count: len(entries), ID: u.ID, Log: entries}, nil
}

func (s *Service) findUser(ctx context.Context, id string) (*tracker.User, error) {
	u, err := s.users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

// exerciseDate resolves the optional form date, defaulting to today. Dates
// are normalized to UTC midnight so the inclusive from/to bounds match whole
// days exactly.
func (s *Service) exerciseDate(raw string) (time.Time, error) {
	if raw == "" {
		now := s.now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, ValidationError("date must be yyyy-mm-dd")
	}
	return d, nil
}
