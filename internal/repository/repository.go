package repository

import (
	"context"

	"alcyxob/fittracker/internal/domain"
	"alcyxob/fittracker/internal/units"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// TemplateRepository persists the full list of day templates. The list is
// small and always read/written wholesale, mirroring how the store keeps
// one JSON blob per key.
type TemplateRepository interface {
	Load(ctx context.Context) ([]domain.DayTemplate, error)
	Save(ctx context.Context, templates []domain.DayTemplate) error
}

// SessionRepository persists the session history. Load runs legacy-record
// migration against the given templates before returning; templates must
// therefore already be loaded (or seeded) when Load is called.
type SessionRepository interface {
	Load(ctx context.Context, templates []domain.DayTemplate) ([]domain.WorkoutSession, error)
	Save(ctx context.Context, sessions []domain.WorkoutSession) error
}

// PreferenceRepository persists the display-unit and rest-timer settings.
// Getters return defaults (kg, 90s) when nothing valid is stored. Reset
// deletes both stored values so the getters fall back to those defaults.
type PreferenceRepository interface {
	Unit(ctx context.Context) (units.Unit, error)
	SetUnit(ctx context.Context, unit units.Unit) error
	RestSeconds(ctx context.Context) (int, error)
	SetRestSeconds(ctx context.Context, seconds int) error
	Reset(ctx context.Context) error
}
