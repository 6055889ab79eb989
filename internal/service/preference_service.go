package service

import (
	"context"

	"alcyxob/fittracker/internal/repository"
	"alcyxob/fittracker/internal/units"
)

// PreferenceService manages the display-unit and rest-timer settings.
type PreferenceService interface {
	Unit(ctx context.Context) (units.Unit, error)
	SetUnit(ctx context.Context, unit units.Unit) error
	RestSeconds(ctx context.Context) (int, error)
	SetRestSeconds(ctx context.Context, seconds int) error
	Reset(ctx context.Context) error
}

type preferenceService struct {
	repo repository.PreferenceRepository
}

// NewPreferenceService creates a new instance of preferenceService.
func NewPreferenceService(repo repository.PreferenceRepository) PreferenceService {
	return &preferenceService{repo: repo}
}

func (s *preferenceService) Unit(ctx context.Context) (units.Unit, error) {
	return s.repo.Unit(ctx)
}

func (s *preferenceService) SetUnit(ctx context.Context, unit units.Unit) error {
	return s.repo.SetUnit(ctx, unit)
}

func (s *preferenceService) RestSeconds(ctx context.Context) (int, error) {
	return s.repo.RestSeconds(ctx)
}

func (s *preferenceService) SetRestSeconds(ctx context.Context, seconds int) error {
	return s.repo.SetRestSeconds(ctx, seconds)
}

// Reset restores both preferences to their defaults.
func (s *preferenceService) Reset(ctx context.Context) error {
	return s.repo.Reset(ctx)
}
