package service

import (
	"strconv"
	"strings"

	"alcyxob/fittracker/internal/datekey"
	"alcyxob/fittracker/internal/domain"
)

// Progression bump sizes, in kg. Isolation-style movements (curls, raises)
// progress in smaller steps than compound lifts.
const (
	isolationBump = 1.25
	compoundBump  = 2.5
)

// Suggestion is a progressive-overload hint for one exercise. It is
// advisory only: the caller displays it, the draft is never auto-bumped.
type Suggestion struct {
	LastWeight      float64 `json:"lastWeight"`
	SuggestedWeight float64 `json:"suggestedWeight"`
}

// BuildSession constructs a fresh draft session from a template and the
// full session history. Each template exercise is seeded with the weight
// last recorded for the same exercise name in the most recent session of
// this day, or zero when there is no match. Pure function of its inputs;
// Date stays empty until commit.
func BuildSession(dayID string, template domain.DayTemplate, history []domain.WorkoutSession) domain.WorkoutSession {
	last := latestSessionForDay(dayID, history)

	exercises := make([]domain.Exercise, 0, len(template.Exercises))
	for i, t := range template.Exercises {
		weight := 0.0
		if last != nil {
			if prev := findExercise(last.Exercises, t.Name); prev != nil {
				weight = prev.Weight
			}
		}
		exercises = append(exercises, domain.Exercise{
			ID:        sessionExerciseID(dayID, i),
			Name:      t.Name,
			Sets:      t.Sets,
			Reps:      t.Reps,
			Weight:    weight,
			Completed: false,
		})
	}

	return domain.WorkoutSession{
		DayID:     dayID,
		DayName:   template.Name,
		DayColor:  template.Color,
		Exercises: exercises,
		Completed: false,
	}
}

// Suggest returns the progressive-overload suggestion for an exercise, or
// nil when the day has no prior session containing it. The bump is 1.25 kg
// for isolation movements (name contains "curl" or "raise") and 2.5 kg
// otherwise.
func Suggest(exerciseName, dayID string, history []domain.WorkoutSession) *Suggestion {
	var recent *domain.WorkoutSession
	for i := range history {
		s := &history[i]
		if s.DayID != dayID || findExercise(s.Exercises, exerciseName) == nil {
			continue
		}
		// same date on two sessions: the later-logged one wins
		if recent == nil || !datekey.Parse(s.Date).Before(datekey.Parse(recent.Date)) {
			recent = s
		}
	}
	if recent == nil {
		return nil
	}

	last := findExercise(recent.Exercises, exerciseName)
	bump := compoundBump
	lower := strings.ToLower(exerciseName)
	if strings.Contains(lower, "curl") || strings.Contains(lower, "raise") {
		bump = isolationBump
	}
	return &Suggestion{
		LastWeight:      last.Weight,
		SuggestedWeight: last.Weight + bump,
	}
}

// latestSessionForDay picks the history entry for dayID with the latest
// date, breaking date ties by latest creation order (history is kept in
// creation order).
func latestSessionForDay(dayID string, history []domain.WorkoutSession) *domain.WorkoutSession {
	var best *domain.WorkoutSession
	for i := range history {
		s := &history[i]
		if s.DayID != dayID {
			continue
		}
		if best == nil || !datekey.Parse(s.Date).Before(datekey.Parse(best.Date)) {
			best = s
		}
	}
	return best
}

func findExercise(exercises []domain.Exercise, name string) *domain.Exercise {
	for i := range exercises {
		if exercises[i].Name == name {
			return &exercises[i]
		}
	}
	return nil
}

func sessionExerciseID(dayID string, index int) string {
	return dayID + "-" + strconv.Itoa(index)
}
