package service

import (
	"context"
	"errors"
	"fmt"

	"alcyxob/fittracker/internal/domain"
	"alcyxob/fittracker/internal/repository"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrTemplateNotFound = errors.New("day template not found")
)

// TemplateService manages the user's workout-day templates.
type TemplateService interface {
	ListTemplates(ctx context.Context) []domain.DayTemplate
	GetTemplate(ctx context.Context, id string) (domain.DayTemplate, error)
	CreateTemplate(ctx context.Context, name string, color domain.ColorKey, exercises []domain.TemplateExercise) (domain.DayTemplate, error)
	UpdateTemplate(ctx context.Context, id, name string, color domain.ColorKey, exercises []domain.TemplateExercise) (domain.DayTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error
}

// templateService implements TemplateService over the shared app state,
// persisting the whole template list on every change.
type templateService struct {
	state *AppState
	repo  repository.TemplateRepository
}

// NewTemplateService creates a new instance of templateService.
func NewTemplateService(state *AppState, repo repository.TemplateRepository) TemplateService {
	return &templateService{state: state, repo: repo}
}

func (s *templateService) ListTemplates(_ context.Context) []domain.DayTemplate {
	return s.state.Templates()
}

func (s *templateService) GetTemplate(_ context.Context, id string) (domain.DayTemplate, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	for _, t := range s.state.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.DayTemplate{}, ErrTemplateNotFound
}

func (s *templateService) CreateTemplate(ctx context.Context, name string, color domain.ColorKey, exercises []domain.TemplateExercise) (domain.DayTemplate, error) {
	if exercises == nil {
		exercises = []domain.TemplateExercise{}
	}
	template := domain.DayTemplate{
		ID:        "day-" + uuid.NewString(),
		Name:      name,
		Color:     color.OrGray(),
		Exercises: withExerciseIDs(exercises),
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.templates = append(s.state.templates, template)
	if err := s.repo.Save(ctx, s.state.templates); err != nil {
		return domain.DayTemplate{}, fmt.Errorf("persist templates: %w", err)
	}
	return template, nil
}

// UpdateTemplate replaces the name, color and exercise list of an existing
// template. The template ID is immutable, so historical sessions keep
// resolving to the same day.
func (s *templateService) UpdateTemplate(ctx context.Context, id, name string, color domain.ColorKey, exercises []domain.TemplateExercise) (domain.DayTemplate, error) {
	if exercises == nil {
		exercises = []domain.TemplateExercise{}
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i, t := range s.state.templates {
		if t.ID != id {
			continue
		}
		t.Name = name
		t.Color = color.OrGray()
		t.Exercises = withExerciseIDs(exercises)
		s.state.templates[i] = t
		if err := s.repo.Save(ctx, s.state.templates); err != nil {
			return domain.DayTemplate{}, fmt.Errorf("persist templates: %w", err)
		}
		return t, nil
	}
	return domain.DayTemplate{}, ErrTemplateNotFound
}

// DeleteTemplate removes a template. History referencing it is left alone:
// committed sessions carry their own dayName/dayColor snapshots.
func (s *templateService) DeleteTemplate(ctx context.Context, id string) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i, t := range s.state.templates {
		if t.ID != id {
			continue
		}
		s.state.templates = append(s.state.templates[:i], s.state.templates[i+1:]...)
		if err := s.repo.Save(ctx, s.state.templates); err != nil {
			return fmt.Errorf("persist templates: %w", err)
		}
		return nil
	}
	return ErrTemplateNotFound
}

// withExerciseIDs fills in a stable ID for any exercise that arrived
// without one, leaving existing IDs untouched so history keeps matching.
func withExerciseIDs(exercises []domain.TemplateExercise) []domain.TemplateExercise {
	out := make([]domain.TemplateExercise, len(exercises))
	copy(out, exercises)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = "ex-" + uuid.NewString()
		}
	}
	return out
}
