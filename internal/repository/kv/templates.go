package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"alcyxob/fittracker/internal/domain"
	"alcyxob/fittracker/internal/repository"
	"alcyxob/fittracker/internal/store"

	log "github.com/sirupsen/logrus"
)

// kvTemplateRepository implements repository.TemplateRepository.
type kvTemplateRepository struct {
	kv store.KV
}

// NewTemplateRepository creates a template repository backed by kv.
func NewTemplateRepository(kv store.KV) repository.TemplateRepository {
	return &kvTemplateRepository{kv: kv}
}

// Load returns the persisted templates. Both "never written" and
// "unparseable" surface as ErrNotFound so the caller reseeds defaults.
func (r *kvTemplateRepository) Load(ctx context.Context) ([]domain.DayTemplate, error) {
	raw, err := r.kv.Get(ctx, store.KeyTemplates)
	if errors.Is(err, store.ErrNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	var templates []domain.DayTemplate
	if err := json.Unmarshal([]byte(raw), &templates); err != nil {
		log.Errorf("templates are unparseable, defaults will be reseeded: %s", err)
		return nil, repository.ErrNotFound
	}
	return templates, nil
}

func (r *kvTemplateRepository) Save(ctx context.Context, templates []domain.DayTemplate) error {
	if templates == nil {
		templates = []domain.DayTemplate{}
	}
	blob, err := json.Marshal(templates)
	if err != nil {
		return fmt.Errorf("marshal templates: %w", err)
	}
	return r.kv.Set(ctx, store.KeyTemplates, string(blob))
}
