package kv

import (
	"strings"

	"alcyxob/fittracker/internal/domain"
)

// Record is a persisted session as it appears on disk, before its shape is
// known. Older installs stored sessions keyed by a free-text "day" label;
// current records carry dayId/dayName/dayColor. Decoding into Record and
// branching on IsLegacy makes the two shapes an explicit union instead of
// ad hoc property probing.
type Record struct {
	ID        string            `json:"id"`
	Date      string            `json:"date"`
	Day       string            `json:"day,omitempty"` // legacy label
	DayID     string            `json:"dayId,omitempty"`
	DayName   string            `json:"dayName,omitempty"`
	DayColor  domain.ColorKey   `json:"dayColor,omitempty"`
	Exercises []domain.Exercise `json:"exercises"`
	Duration  *int              `json:"duration,omitempty"`
	Completed any               `json:"completed,omitempty"` // coerced to bool on migrate
}

// IsLegacy reports whether the record still has the old shape.
func (r Record) IsLegacy() bool {
	return r.DayID == "" || r.DayName == ""
}

// Migrate upgrades every record to the current session shape. Records that
// are already current pass through unchanged; legacy records resolve their
// day label against templates (case-insensitive name match, then the first
// template, then a synthetic gray placeholder when no templates exist).
// The legacy label is kept as DayName so history text is never rewritten.
// Migration never drops a record and never touches ID or Date, which makes
// it idempotent. The second result is the number of legacy records that
// needed work.
func Migrate(records []Record, templates []domain.DayTemplate) ([]domain.WorkoutSession, int) {
	sessions := make([]domain.WorkoutSession, 0, len(records))
	migrated := 0

	for _, r := range records {
		if !r.IsLegacy() {
			sessions = append(sessions, domain.WorkoutSession{
				ID:        r.ID,
				Date:      r.Date,
				DayID:     r.DayID,
				DayName:   r.DayName,
				DayColor:  r.DayColor,
				Exercises: r.Exercises,
				Duration:  r.Duration,
				Completed: coerceBool(r.Completed),
			})
			continue
		}

		migrated++
		label := r.Day
		if label == "" {
			label = "Workout"
		}
		resolved := resolveTemplate(label, templates)

		exercises := r.Exercises
		if exercises == nil {
			exercises = []domain.Exercise{}
		}

		sessions = append(sessions, domain.WorkoutSession{
			ID:        r.ID,
			Date:      r.Date,
			DayID:     resolved.ID,
			DayName:   label,
			DayColor:  resolved.Color,
			Exercises: exercises,
			Duration:  r.Duration,
			Completed: coerceBool(r.Completed),
		})
	}

	return sessions, migrated
}

func resolveTemplate(label string, templates []domain.DayTemplate) domain.DayTemplate {
	for _, t := range templates {
		if strings.EqualFold(t.Name, label) {
			return t
		}
	}
	if len(templates) > 0 {
		return templates[0]
	}
	return domain.DayTemplate{ID: "legacy", Name: label, Color: domain.ColorGray}
}

// coerceBool applies truthiness to whatever the old records stored under
// "completed" (bool, number, string or nothing).
func coerceBool(v any) bool {
	switch value := v.(type) {
	case bool:
		return value
	case float64:
		return value != 0
	case string:
		return value != "" && value != "false"
	default:
		return false
	}
}
