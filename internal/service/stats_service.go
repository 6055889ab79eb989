package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"alcyxob/fittracker/internal/datekey"
	"alcyxob/fittracker/internal/domain"
)

// Overview is the dashboard summary derived from the whole history.
type Overview struct {
	TotalWorkouts      int     `json:"totalWorkouts"`
	CompletedWorkouts  int     `json:"completedWorkouts"`
	CompletionRate     float64 `json:"completionRate"` // percent, 0-100
	AvgDurationMinutes int     `json:"avgDurationMinutes"`
	ThisWeek           int     `json:"thisWeek"`
	ThisMonth          int     `json:"thisMonth"`
}

// SeriesPoint is one history entry of an exercise's trend series.
type SeriesPoint struct {
	Date      string          `json:"date"`
	DayName   string          `json:"dayName"`
	DayColor  domain.ColorKey `json:"dayColor,omitempty"`
	Weight    float64         `json:"weight"`
	Reps      string          `json:"reps"`
	Completed bool            `json:"completed"`
}

// CalendarDay is one cell of a month grid: the date key and the session
// shown for that day, if any.
type CalendarDay struct {
	Day     int                    `json:"day"`
	Date    string                 `json:"date"`
	Session *domain.WorkoutSession `json:"session,omitempty"`
}

// StatsService answers read-only aggregation queries over the history.
type StatsService interface {
	Overview(ctx context.Context) Overview
	ExerciseNames(ctx context.Context) []string
	ExerciseSeries(ctx context.Context, exerciseName string) []SeriesPoint
	PersonalBest(ctx context.Context, exerciseName string) (float64, bool)
	IsPersonalBest(ctx context.Context, exerciseName string, weight float64) bool
	CalendarMonth(ctx context.Context, year int, month time.Month) []CalendarDay
}

type statsService struct {
	state *AppState
	now   func() time.Time
}

// NewStatsService creates a new instance of statsService.
func NewStatsService(state *AppState) StatsService {
	return &statsService{state: state, now: time.Now}
}

func (s *statsService) Overview(_ context.Context) Overview {
	sessions := s.state.Sessions()
	now := s.now()

	// local week starting Sunday, local month
	weekStart := time.Date(now.Year(), now.Month(), now.Day()-int(now.Weekday()), 0, 0, 0, 0, time.Local)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)

	var completed, thisWeek, thisMonth int
	var durationSum, durationCount int
	for _, session := range sessions {
		if session.Completed {
			completed++
		}
		if session.Duration != nil {
			durationSum += *session.Duration
			durationCount++
		}
		date := datekey.Parse(session.Date)
		if !date.Before(weekStart) {
			thisWeek++
		}
		if !date.Before(monthStart) {
			thisMonth++
		}
	}

	// denominators floored at 1 so an empty history yields 0, not NaN
	rate := float64(completed) / float64(max(len(sessions), 1)) * 100
	avgDuration := durationSum / max(durationCount, 1)

	return Overview{
		TotalWorkouts:      len(sessions),
		CompletedWorkouts:  completed,
		CompletionRate:     rate,
		AvgDurationMinutes: avgDuration,
		ThisWeek:           thisWeek,
		ThisMonth:          thisMonth,
	}
}

// ExerciseNames returns every distinct non-blank exercise name that ever
// appeared in history, sorted.
func (s *statsService) ExerciseNames(_ context.Context) []string {
	seen := make(map[string]struct{})
	for _, session := range s.state.Sessions() {
		for _, ex := range session.Exercises {
			if strings.TrimSpace(ex.Name) == "" {
				continue
			}
			seen[ex.Name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExerciseSeries projects the trend of one exercise across all sessions
// containing it, ascending by date.
func (s *statsService) ExerciseSeries(_ context.Context, exerciseName string) []SeriesPoint {
	sessions := s.state.Sessions()
	points := make([]SeriesPoint, 0)
	for _, session := range sessions {
		ex := findExercise(session.Exercises, exerciseName)
		if ex == nil {
			continue
		}
		points = append(points, SeriesPoint{
			Date:      session.Date,
			DayName:   session.DayName,
			DayColor:  session.DayColor,
			Weight:    ex.Weight,
			Reps:      ex.Reps,
			Completed: ex.Completed,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return datekey.Parse(points[i].Date).Before(datekey.Parse(points[j].Date))
	})
	return points
}

// PersonalBest returns the maximum weight ever logged for the exercise in
// a completed state. The second result is false when it was never
// completed with a positive weight.
func (s *statsService) PersonalBest(_ context.Context, exerciseName string) (float64, bool) {
	best := 0.0
	found := false
	for _, session := range s.state.Sessions() {
		ex := findExercise(session.Exercises, exerciseName)
		if ex == nil || !ex.Completed || ex.Weight <= 0 {
			continue
		}
		if ex.Weight > best {
			best = ex.Weight
		}
		found = true
	}
	return best, found
}

// IsPersonalBest reports whether logging weight for this exercise counts
// as a PR. Matching the running maximum counts: ties are PRs.
func (s *statsService) IsPersonalBest(ctx context.Context, exerciseName string, weight float64) bool {
	if weight <= 0 {
		return false
	}
	best, found := s.PersonalBest(ctx, exerciseName)
	if !found {
		return true
	}
	return weight >= best
}

// CalendarMonth builds the session-per-day view of one month. Nothing
// enforces one session per date; when several share a date the most
// recently logged one wins the cell.
func (s *statsService) CalendarMonth(_ context.Context, year int, month time.Month) []CalendarDay {
	sessions := s.state.Sessions()
	byDate := make(map[string]domain.WorkoutSession)
	for _, session := range sessions {
		// later entries overwrite earlier ones: creation order is the tie-break
		byDate[session.Date] = session
	}

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
	days := make([]CalendarDay, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		key := datekey.FromYMD(year, int(month)-1, day)
		cell := CalendarDay{Day: day, Date: key}
		if session, ok := byDate[key]; ok {
			cell.Session = &session
		}
		days = append(days, cell)
	}
	return days
}
