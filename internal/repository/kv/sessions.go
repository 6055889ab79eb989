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

// kvSessionRepository implements repository.SessionRepository on top of a
// KV store, keeping the whole history as one JSON array under a fixed key.
type kvSessionRepository struct {
	kv store.KV
}

// NewSessionRepository creates a session repository backed by kv.
func NewSessionRepository(kv store.KV) repository.SessionRepository {
	return &kvSessionRepository{kv: kv}
}

// Load reads the persisted history, migrates any legacy records, and
// writes the migrated result back so migration only ever runs once. An
// unparseable blob resets history to empty rather than failing startup:
// losing data beats not starting for a personal tool.
func (r *kvSessionRepository) Load(ctx context.Context, templates []domain.DayTemplate) ([]domain.WorkoutSession, error) {
	raw, err := r.kv.Get(ctx, store.KeySessions)
	if errors.Is(err, store.ErrNotFound) {
		return []domain.WorkoutSession{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Errorf("session history is unparseable, resetting to empty: %s", err)
		if err := r.Save(ctx, []domain.WorkoutSession{}); err != nil {
			return nil, err
		}
		return []domain.WorkoutSession{}, nil
	}

	sessions, migrated := Migrate(records, templates)
	if migrated > 0 {
		log.Infof("migrated %d legacy session record(s)", migrated)
		if err := r.Save(ctx, sessions); err != nil {
			return nil, fmt.Errorf("persist migrated sessions: %w", err)
		}
	}
	return sessions, nil
}

func (r *kvSessionRepository) Save(ctx context.Context, sessions []domain.WorkoutSession) error {
	if sessions == nil {
		sessions = []domain.WorkoutSession{}
	}
	blob, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("marshal sessions: %w", err)
	}
	return r.kv.Set(ctx, store.KeySessions, string(blob))
}
