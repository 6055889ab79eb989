package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"alcyxob/fittracker/internal/domain"
	"alcyxob/fittracker/internal/repository"

	log "github.com/sirupsen/logrus"
)

// AppState holds the in-memory template and session collections. There is
// exactly one logical writer at a time: every mutation goes through a
// service method that takes the write lock, applies the change, and
// persists the affected collection before releasing it. History is
// append-only after load; committed sessions are never edited in place.
type AppState struct {
	mu        sync.RWMutex
	templates []domain.DayTemplate
	sessions  []domain.WorkoutSession
}

// LoadState performs the startup sequence: load templates (seeding the
// default plan on first run or after a corrupt blob), then load and
// migrate the session history. Templates must come first because legacy
// session records resolve their day labels against them.
func LoadState(
	ctx context.Context,
	templateRepo repository.TemplateRepository,
	sessionRepo repository.SessionRepository,
) (*AppState, error) {
	templates, err := templateRepo.Load(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		templates = domain.DefaultTemplates()
		if err := templateRepo.Save(ctx, templates); err != nil {
			return nil, fmt.Errorf("seed default templates: %w", err)
		}
		log.Infof("seeded %d default day templates", len(templates))
	} else if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	sessions, err := sessionRepo.Load(ctx, templates)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	return &AppState{
		templates: templates,
		sessions:  sessions,
	}, nil
}

// Templates returns a copy of the current template list.
func (s *AppState) Templates() []domain.DayTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.DayTemplate, len(s.templates))
	copy(out, s.templates)
	return out
}

// Sessions returns a copy of the session history, in creation order.
func (s *AppState) Sessions() []domain.WorkoutSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.WorkoutSession, len(s.sessions))
	copy(out, s.sessions)
	return out
}
