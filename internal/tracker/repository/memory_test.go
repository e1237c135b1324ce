package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gjaolabs/boilerplate-project-exercisetracker/internal/tracker"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestMemoryUserRepository(t *testing.T) {
	r := NewMemoryUserRepository()
	ctx := context.Background()

	a := &tracker.User{Username: "alice"}
	require.NoError(t, r.Create(ctx, a))
	require.NotEmpty(t, a.ID)

	b := &tracker.User{Username: "bob"}
	require.NoError(t, r.Create(ctx, b))
	require.NotEqual(t, a.ID, b.ID)

	got, err := r.Get(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)

	_, err = r.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "alice", list[0].Username)
	require.Equal(t, "bob", list[1].Username)
}

func TestMemoryExerciseRepository_Filtering(t *testing.T) {
	r := NewMemoryExerciseRepository()
	ctx := context.Background()

	for _, d := range []string{"1990-01-01", "1990-06-15", "1990-12-31"} {
		e := &tracker.Exercise{UserID: "u1", Description: "run", Duration: 30, Date: day(d)}
		require.NoError(t, r.Create(ctx, e))
		require.NotEmpty(t, e.ID)
	}
	require.NoError(t, r.Create(ctx, &tracker.Exercise{UserID: "u2", Description: "swim", Duration: 20, Date: day("1990-06-15")}))

	// only the owner's records
	all, err := r.ListByUser(ctx, "u1", LogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	// inclusive bounds
	from, to := day("1990-06-15"), day("1990-06-15")
	mid, err := r.ListByUser(ctx, "u1", LogFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, mid, 1)
	require.Equal(t, day("1990-06-15"), mid[0].Date)

	// limit caps the result in insertion order
	capped, err := r.ListByUser(ctx, "u1", LogFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, capped, 2)
	require.Equal(t, day("1990-01-01"), capped[0].Date)

	// unknown user yields an empty, non-nil slice
	none, err := r.ListByUser(ctx, "nobody", LogFilter{})
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}
