package kv

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"alcyxob/fittracker/internal/repository"
	"alcyxob/fittracker/internal/store"
	"alcyxob/fittracker/internal/units"
)

// DefaultRestSeconds is the rest-timer length a fresh install starts with.
const DefaultRestSeconds = 90

// kvPreferenceRepository implements repository.PreferenceRepository.
type kvPreferenceRepository struct {
	kv store.KV
}

// NewPreferenceRepository creates a preference repository backed by kv.
func NewPreferenceRepository(kv store.KV) repository.PreferenceRepository {
	return &kvPreferenceRepository{kv: kv}
}

// Unit returns the stored display unit, falling back to kg when nothing
// valid is stored.
func (r *kvPreferenceRepository) Unit(ctx context.Context) (units.Unit, error) {
	raw, err := r.kv.Get(ctx, store.KeyUnit)
	if errors.Is(err, store.ErrNotFound) {
		return units.DefaultUnit, nil
	}
	if err != nil {
		return units.DefaultUnit, err
	}
	unit := units.Unit(raw)
	if !unit.IsValid() {
		return units.DefaultUnit, nil
	}
	return unit, nil
}

func (r *kvPreferenceRepository) SetUnit(ctx context.Context, unit units.Unit) error {
	if !unit.IsValid() {
		return fmt.Errorf("invalid unit %q", unit)
	}
	return r.kv.Set(ctx, store.KeyUnit, string(unit))
}

// RestSeconds returns the stored rest-timer length, falling back to the
// default when the stored value is absent, garbage, or non-positive.
func (r *kvPreferenceRepository) RestSeconds(ctx context.Context) (int, error) {
	raw, err := r.kv.Get(ctx, store.KeyRestSeconds)
	if errors.Is(err, store.ErrNotFound) {
		return DefaultRestSeconds, nil
	}
	if err != nil {
		return DefaultRestSeconds, err
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return DefaultRestSeconds, nil
	}
	return seconds, nil
}

func (r *kvPreferenceRepository) SetRestSeconds(ctx context.Context, seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("rest seconds must be positive, got %d", seconds)
	}
	return r.kv.Set(ctx, store.KeyRestSeconds, strconv.Itoa(seconds))
}

// Reset removes both stored preferences; the getters then fall back to
// their defaults.
func (r *kvPreferenceRepository) Reset(ctx context.Context) error {
	if err := r.kv.Delete(ctx, store.KeyUnit); err != nil {
		return fmt.Errorf("reset unit: %w", err)
	}
	if err := r.kv.Delete(ctx, store.KeyRestSeconds); err != nil {
		return fmt.Errorf("reset rest seconds: %w", err)
	}
	return nil
}
