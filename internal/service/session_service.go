package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"alcyxob/fittracker/internal/datekey"
	"alcyxob/fittracker/internal/domain"
	"alcyxob/fittracker/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrDraftNotFound         = errors.New("draft session not found")
	ErrDraftExerciseNotFound = errors.New("exercise not found in draft session")
)

// Draft is an in-progress workout session: the editable state between
// StartSession and CommitSession. Drafts live only in memory; nothing is
// persisted until commit.
type Draft struct {
	ID        string            `json:"id"`
	DayID     string            `json:"dayId"`
	DayName   string            `json:"dayName"`
	DayColor  domain.ColorKey   `json:"dayColor"`
	Exercises []domain.Exercise `json:"exercises"`
	StartedAt time.Time         `json:"startedAt"`
}

// ExercisePatch is a partial update to one draft exercise; nil fields are
// left untouched.
type ExercisePatch struct {
	Weight    *float64 `json:"weight"`
	Completed *bool    `json:"completed"`
	Reps      *string  `json:"reps"`
	Notes     *string  `json:"notes"`
}

// SessionService owns the workout-session lifecycle: start a draft from a
// template, edit it, and commit it into the append-only history.
type SessionService interface {
	StartSession(ctx context.Context, dayID string) (Draft, error)
	GetDraft(ctx context.Context, draftID string) (Draft, error)
	UpdateDraftExercise(ctx context.Context, draftID, exerciseID string, patch ExercisePatch) (Draft, error)
	DiscardDraft(ctx context.Context, draftID string) error
	CommitSession(ctx context.Context, draftID string) (domain.WorkoutSession, error)
	Suggest(ctx context.Context, exerciseName, dayID string) *Suggestion
	History(ctx context.Context) []domain.WorkoutSession
}

type sessionService struct {
	state *AppState
	repo  repository.SessionRepository

	draftsMu sync.Mutex
	drafts   map[string]*Draft

	now func() time.Time
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(state *AppState, repo repository.SessionRepository) SessionService {
	return &sessionService{
		state:  state,
		repo:   repo,
		drafts: make(map[string]*Draft),
		now:    time.Now,
	}
}

// StartSession builds a fresh draft for the given day, seeded from the
// most recent prior session of that day.
func (s *sessionService) StartSession(_ context.Context, dayID string) (Draft, error) {
	var template *domain.DayTemplate
	for _, t := range s.state.Templates() {
		if t.ID == dayID {
			template = &t
			break
		}
	}
	if template == nil {
		return Draft{}, ErrTemplateNotFound
	}

	built := BuildSession(dayID, *template, s.state.Sessions())
	draft := &Draft{
		ID:        uuid.NewString(),
		DayID:     built.DayID,
		DayName:   built.DayName,
		DayColor:  built.DayColor,
		Exercises: built.Exercises,
		StartedAt: s.now(),
	}

	s.draftsMu.Lock()
	defer s.draftsMu.Unlock()
	s.drafts[draft.ID] = draft
	return *draft, nil
}

func (s *sessionService) GetDraft(_ context.Context, draftID string) (Draft, error) {
	s.draftsMu.Lock()
	defer s.draftsMu.Unlock()
	draft, ok := s.drafts[draftID]
	if !ok {
		return Draft{}, ErrDraftNotFound
	}
	return *draft, nil
}

// UpdateDraftExercise applies a partial edit to one exercise of an
// in-progress draft.
func (s *sessionService) UpdateDraftExercise(_ context.Context, draftID, exerciseID string, patch ExercisePatch) (Draft, error) {
	s.draftsMu.Lock()
	defer s.draftsMu.Unlock()
	draft, ok := s.drafts[draftID]
	if !ok {
		return Draft{}, ErrDraftNotFound
	}

	for i := range draft.Exercises {
		if draft.Exercises[i].ID != exerciseID {
			continue
		}
		if patch.Weight != nil {
			draft.Exercises[i].Weight = *patch.Weight
		}
		if patch.Completed != nil {
			draft.Exercises[i].Completed = *patch.Completed
		}
		if patch.Reps != nil {
			draft.Exercises[i].Reps = *patch.Reps
		}
		if patch.Notes != nil {
			draft.Exercises[i].Notes = *patch.Notes
		}
		return *draft, nil
	}
	return Draft{}, ErrDraftExerciseNotFound
}

func (s *sessionService) DiscardDraft(_ context.Context, draftID string) error {
	s.draftsMu.Lock()
	defer s.draftsMu.Unlock()
	if _, ok := s.drafts[draftID]; !ok {
		return ErrDraftNotFound
	}
	delete(s.drafts, draftID)
	return nil
}

// CommitSession finalizes a draft into an immutable history record and
// persists the appended history. The draft is consumed on success, so a
// draft can be committed at most once.
func (s *sessionService) CommitSession(ctx context.Context, draftID string) (domain.WorkoutSession, error) {
	s.draftsMu.Lock()
	draft, ok := s.drafts[draftID]
	s.draftsMu.Unlock()
	if !ok {
		return domain.WorkoutSession{}, ErrDraftNotFound
	}

	session := FinalizeSession(*draft, s.now())

	s.state.mu.Lock()
	s.state.sessions = append(s.state.sessions, session)
	err := s.repo.Save(ctx, s.state.sessions)
	if err != nil {
		// roll the append back so in-memory history stays in step with
		// storage; the draft is kept so the user can retry the save
		s.state.sessions = s.state.sessions[:len(s.state.sessions)-1]
	}
	s.state.mu.Unlock()
	if err != nil {
		return domain.WorkoutSession{}, fmt.Errorf("persist sessions: %w", err)
	}

	s.draftsMu.Lock()
	delete(s.drafts, draftID)
	s.draftsMu.Unlock()

	log.Infof("committed session %s (%s, %d exercises)", session.ID, session.DayName, len(session.Exercises))
	return session, nil
}

func (s *sessionService) Suggest(_ context.Context, exerciseName, dayID string) *Suggestion {
	return Suggest(exerciseName, dayID, s.state.Sessions())
}

func (s *sessionService) History(_ context.Context) []domain.WorkoutSession {
	return s.state.Sessions()
}

// FinalizeSession turns a draft into the record that goes into history:
//   - exercises never touched (zero weight and not completed) are dropped,
//     so placeholder rows do not pollute history;
//   - Completed reflects the pre-filter draft: every exercise had to be
//     marked done;
//   - Date is the local-date key of now, Duration the rounded whole-minute
//     span since the draft was started.
func FinalizeSession(draft Draft, now time.Time) domain.WorkoutSession {
	completed := true
	for _, ex := range draft.Exercises {
		if !ex.Completed {
			completed = false
			break
		}
	}

	kept := make([]domain.Exercise, 0, len(draft.Exercises))
	for _, ex := range draft.Exercises {
		if ex.Weight > 0 || ex.Completed {
			kept = append(kept, ex)
		}
	}

	duration := int(math.Round(now.Sub(draft.StartedAt).Minutes()))

	return domain.WorkoutSession{
		ID:        uuid.NewString(),
		Date:      datekey.Local(now),
		DayID:     draft.DayID,
		DayName:   draft.DayName,
		DayColor:  draft.DayColor,
		Exercises: kept,
		Duration:  &duration,
		Completed: completed,
	}
}
