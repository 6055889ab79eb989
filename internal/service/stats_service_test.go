package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/fittracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsWith(sessions []domain.WorkoutSession, now time.Time) *statsService {
	state := &AppState{sessions: sessions}
	return &statsService{state: state, now: func() time.Time { return now }}
}

func minutes(m int) *int {
	return &m
}

func TestOverview_EmptyHistory(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.Local)
	overview := statsWith(nil, now).Overview(context.Background())

	assert.Equal(t, 0, overview.TotalWorkouts)
	assert.Equal(t, 0, overview.CompletedWorkouts)
	// guarded denominator: 0, never NaN
	assert.Equal(t, 0.0, overview.CompletionRate)
	assert.Equal(t, 0, overview.AvgDurationMinutes)
	assert.Equal(t, 0, overview.ThisWeek)
	assert.Equal(t, 0, overview.ThisMonth)
}

func TestOverview_CountsAndRates(t *testing.T) {
	// 2024-03-20 is a Wednesday; the week started Sunday 2024-03-17
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.Local)
	sessions := []domain.WorkoutSession{
		{ID: "a", Date: "2024-02-15", Completed: true, Duration: minutes(60)},
		{ID: "b", Date: "2024-03-05", Completed: false, Duration: minutes(40)},
		{ID: "c", Date: "2024-03-17", Completed: true},
		{ID: "d", Date: "2024-03-19", Completed: true, Duration: minutes(50)},
	}

	overview := statsWith(sessions, now).Overview(context.Background())
	assert.Equal(t, 4, overview.TotalWorkouts)
	assert.Equal(t, 3, overview.CompletedWorkouts)
	assert.Equal(t, 75.0, overview.CompletionRate)
	// only sessions that have a duration count toward the average
	assert.Equal(t, 50, overview.AvgDurationMinutes)
	assert.Equal(t, 2, overview.ThisWeek)
	assert.Equal(t, 3, overview.ThisMonth)
}

func TestExerciseNames(t *testing.T) {
	sessions := []domain.WorkoutSession{
		// empty and whitespace-only names are both blank
		{Exercises: []domain.Exercise{{Name: "Squats"}, {Name: ""}, {Name: "  "}, {Name: "Bench Press"}}},
		{Exercises: []domain.Exercise{{Name: "Squats"}}},
	}
	names := statsWith(sessions, time.Now()).ExerciseNames(context.Background())
	assert.Equal(t, []string{"Bench Press", "Squats"}, names)
}

func TestExerciseSeries_SortedByDate(t *testing.T) {
	sessions := []domain.WorkoutSession{
		{Date: "2024-03-01", DayName: "Push", Exercises: []domain.Exercise{{Name: "Bench Press", Weight: 90, Reps: "8-10", Completed: true}}},
		{Date: "2024-01-01", DayName: "Push", Exercises: []domain.Exercise{{Name: "Bench Press", Weight: 80, Reps: "8-10", Completed: true}}},
		{Date: "2024-02-01", DayName: "Pull", Exercises: []domain.Exercise{{Name: "Barbell Rows", Weight: 70, Reps: "8-10", Completed: true}}},
	}

	series := statsWith(sessions, time.Now()).ExerciseSeries(context.Background(), "Bench Press")
	require.Len(t, series, 2)
	assert.Equal(t, "2024-01-01", series[0].Date)
	assert.Equal(t, 80.0, series[0].Weight)
	assert.Equal(t, "2024-03-01", series[1].Date)
	assert.Equal(t, 90.0, series[1].Weight)
}

func TestPersonalBest_OnlyCompletedCount(t *testing.T) {
	sessions := []domain.WorkoutSession{
		{Date: "2024-01-01", Exercises: []domain.Exercise{{Name: "Squats", Weight: 100, Completed: true}}},
		{Date: "2024-02-01", Exercises: []domain.Exercise{{Name: "Squats", Weight: 140, Completed: false}}},
		{Date: "2024-03-01", Exercises: []domain.Exercise{{Name: "Squats", Weight: 120, Completed: true}}},
	}

	svc := statsWith(sessions, time.Now())
	best, found := svc.PersonalBest(context.Background(), "Squats")
	require.True(t, found)
	assert.Equal(t, 120.0, best)
}

func TestPersonalBest_NoCompletedHistory(t *testing.T) {
	svc := statsWith(nil, time.Now())
	_, found := svc.PersonalBest(context.Background(), "Squats")
	assert.False(t, found)
	// anything positive is a PR when there is no history yet
	assert.True(t, svc.IsPersonalBest(context.Background(), "Squats", 60))
	assert.False(t, svc.IsPersonalBest(context.Background(), "Squats", 0))
}

func TestIsPersonalBest_TieCounts(t *testing.T) {
	sessions := []domain.WorkoutSession{
		{Date: "2024-01-01", Exercises: []domain.Exercise{{Name: "Squats", Weight: 120, Completed: true}}},
	}
	svc := statsWith(sessions, time.Now())

	// equal-or-exceeds, not strictly-greater
	assert.True(t, svc.IsPersonalBest(context.Background(), "Squats", 120))
	assert.True(t, svc.IsPersonalBest(context.Background(), "Squats", 122.5))
	assert.False(t, svc.IsPersonalBest(context.Background(), "Squats", 117.5))
}

func TestCalendarMonth(t *testing.T) {
	sessions := []domain.WorkoutSession{
		{ID: "a", Date: "2024-02-10", DayName: "Push"},
		{ID: "b", Date: "2024-02-10", DayName: "Pull"}, // same date, logged later
		{ID: "c", Date: "2024-01-31", DayName: "Legs"},
	}

	days := statsWith(sessions, time.Now()).CalendarMonth(context.Background(), 2024, time.February)
	require.Len(t, days, 29) // 2024 is a leap year

	assert.Equal(t, "2024-02-01", days[0].Date)
	assert.Nil(t, days[0].Session)

	require.NotNil(t, days[9].Session)
	// two sessions share the date: the most recently logged one wins
	assert.Equal(t, "b", days[9].Session.ID)
}
