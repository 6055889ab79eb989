package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"alcyxob/fittracker/internal/domain"
	"alcyxob/fittracker/internal/repository"
	"alcyxob/fittracker/internal/repository/kv"
	"alcyxob/fittracker/internal/store/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakySessionRepo fails the next n Save calls, then delegates.
type flakySessionRepo struct {
	repository.SessionRepository
	failures int
}

func (r *flakySessionRepo) Save(ctx context.Context, sessions []domain.WorkoutSession) error {
	if r.failures > 0 {
		r.failures--
		return errors.New("storage unavailable")
	}
	return r.SessionRepository.Save(ctx, sessions)
}

func newTestState(t *testing.T) (*AppState, *sessionService) {
	t.Helper()
	kvStore := memory.New()
	templateRepo := kv.NewTemplateRepository(kvStore)
	sessionRepo := kv.NewSessionRepository(kvStore)

	state, err := LoadState(context.Background(), templateRepo, sessionRepo)
	require.NoError(t, err)

	svc := NewSessionService(state, sessionRepo).(*sessionService)
	return state, svc
}

func TestFinalizeSession_FiltersUntouchedExercises(t *testing.T) {
	start := time.Date(2024, 3, 7, 18, 0, 0, 0, time.Local)
	draft := Draft{
		DayID:   "d1",
		DayName: "Push",
		Exercises: []domain.Exercise{
			{ID: "d1-0", Name: "Bench Press", Weight: 80, Completed: true},
			{ID: "d1-1", Name: "Dips", Weight: 0, Completed: true}, // bodyweight, still kept
			{ID: "d1-2", Name: "Lateral Raises", Weight: 0, Completed: false},
		},
		StartedAt: start,
	}

	session := FinalizeSession(draft, start.Add(42*time.Minute))
	require.Len(t, session.Exercises, 2)
	for _, ex := range session.Exercises {
		assert.NotEqual(t, "Lateral Raises", ex.Name)
	}
}

func TestFinalizeSession_CompletedReflectsPreFilterDraft(t *testing.T) {
	start := time.Date(2024, 3, 7, 18, 0, 0, 0, time.Local)

	allDone := Draft{
		Exercises: []domain.Exercise{
			{ID: "a", Weight: 50, Completed: true},
			{ID: "b", Weight: 0, Completed: true},
		},
		StartedAt: start,
	}
	assert.True(t, FinalizeSession(allDone, start).Completed)

	// the skipped exercise is filtered out of the record, but it still
	// keeps the session from counting as completed
	oneSkipped := Draft{
		Exercises: []domain.Exercise{
			{ID: "a", Weight: 50, Completed: true},
			{ID: "b", Weight: 0, Completed: false},
		},
		StartedAt: start,
	}
	finalized := FinalizeSession(oneSkipped, start)
	assert.False(t, finalized.Completed)
	assert.Len(t, finalized.Exercises, 1)
}

func TestFinalizeSession_DateAndDuration(t *testing.T) {
	start := time.Date(2024, 3, 7, 23, 40, 0, 0, time.Local)
	now := start.Add(37*time.Minute + 40*time.Second)

	session := FinalizeSession(Draft{StartedAt: start}, now)
	assert.Equal(t, "2024-03-07", session.Date)
	require.NotNil(t, session.Duration)
	assert.Equal(t, 38, *session.Duration) // rounded to whole minutes
	assert.NotEmpty(t, session.ID)
}

func TestSessionService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	state, svc := newTestState(t)

	start := time.Date(2024, 3, 7, 18, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return start }

	templates := state.Templates()
	require.NotEmpty(t, templates)
	dayID := templates[0].ID

	draft, err := svc.StartSession(ctx, dayID)
	require.NoError(t, err)
	require.NotEmpty(t, draft.Exercises)
	assert.Equal(t, templates[0].Name, draft.DayName)

	// log a weight and complete the first exercise
	weight := 80.0
	done := true
	draft, err = svc.UpdateDraftExercise(ctx, draft.ID, draft.Exercises[0].ID, ExercisePatch{
		Weight:    &weight,
		Completed: &done,
	})
	require.NoError(t, err)
	assert.Equal(t, 80.0, draft.Exercises[0].Weight)
	assert.True(t, draft.Exercises[0].Completed)

	svc.now = func() time.Time { return start.Add(45 * time.Minute) }
	session, err := svc.CommitSession(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-07", session.Date)
	require.NotNil(t, session.Duration)
	assert.Equal(t, 45, *session.Duration)
	// only the touched exercise survives the commit filter
	require.Len(t, session.Exercises, 1)
	assert.Equal(t, "Bench Press", session.Exercises[0].Name)
	// not every draft exercise was completed
	assert.False(t, session.Completed)

	// the commit appended to history
	history := svc.History(ctx)
	require.Len(t, history, 1)
	assert.Equal(t, session.ID, history[0].ID)

	// the draft is consumed: a second commit must fail
	_, err = svc.CommitSession(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestSessionService_CommitRollsBackOnSaveFailure(t *testing.T) {
	ctx := context.Background()
	kvStore := memory.New()
	templateRepo := kv.NewTemplateRepository(kvStore)
	sessionRepo := kv.NewSessionRepository(kvStore)

	state, err := LoadState(ctx, templateRepo, sessionRepo)
	require.NoError(t, err)

	flaky := &flakySessionRepo{SessionRepository: sessionRepo, failures: 1}
	svc := NewSessionService(state, flaky).(*sessionService)

	draft, err := svc.StartSession(ctx, state.Templates()[0].ID)
	require.NoError(t, err)
	weight := 80.0
	done := true
	_, err = svc.UpdateDraftExercise(ctx, draft.ID, draft.Exercises[0].ID, ExercisePatch{Weight: &weight, Completed: &done})
	require.NoError(t, err)

	_, err = svc.CommitSession(ctx, draft.ID)
	require.Error(t, err)

	// the failed save must not leave an unpersisted session behind
	assert.Empty(t, svc.History(ctx))

	// the draft survives, and the retry commits exactly one session
	_, err = svc.GetDraft(ctx, draft.ID)
	require.NoError(t, err)
	session, err := svc.CommitSession(ctx, draft.ID)
	require.NoError(t, err)

	history := svc.History(ctx)
	require.Len(t, history, 1)
	assert.Equal(t, session.ID, history[0].ID)
}

func TestSessionService_StartUnknownDay(t *testing.T) {
	_, svc := newTestState(t)
	_, err := svc.StartSession(context.Background(), "no-such-day")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestSessionService_NextSessionSeedsFromCommitted(t *testing.T) {
	ctx := context.Background()
	state, svc := newTestState(t)

	start := time.Date(2024, 3, 7, 18, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return start }

	dayID := state.Templates()[0].ID
	draft, err := svc.StartSession(ctx, dayID)
	require.NoError(t, err)

	weight := 77.5
	done := true
	_, err = svc.UpdateDraftExercise(ctx, draft.ID, draft.Exercises[0].ID, ExercisePatch{Weight: &weight, Completed: &done})
	require.NoError(t, err)
	_, err = svc.CommitSession(ctx, draft.ID)
	require.NoError(t, err)

	next, err := svc.StartSession(ctx, dayID)
	require.NoError(t, err)
	assert.Equal(t, 77.5, next.Exercises[0].Weight)
	assert.False(t, next.Exercises[0].Completed)
}

func TestSessionService_DiscardDraft(t *testing.T) {
	ctx := context.Background()
	state, svc := newTestState(t)

	draft, err := svc.StartSession(ctx, state.Templates()[0].ID)
	require.NoError(t, err)
	require.NoError(t, svc.DiscardDraft(ctx, draft.ID))

	_, err = svc.GetDraft(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.Empty(t, svc.History(ctx))
}
