package service_test

import (
	"context"
	"testing"

	"alcyxob/fittracker/internal/domain"
	"alcyxob/fittracker/internal/repository/kv"
	"alcyxob/fittracker/internal/service"
	"alcyxob/fittracker/internal/store/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTemplateService(t *testing.T) (service.TemplateService, *memory.Store) {
	t.Helper()
	kvStore := memory.New()
	templateRepo := kv.NewTemplateRepository(kvStore)
	sessionRepo := kv.NewSessionRepository(kvStore)

	state, err := service.LoadState(context.Background(), templateRepo, sessionRepo)
	require.NoError(t, err)
	return service.NewTemplateService(state, templateRepo), kvStore
}

func TestLoadState_SeedsDefaultPlanOnFirstRun(t *testing.T) {
	svc, _ := newTemplateService(t)

	templates := svc.ListTemplates(context.Background())
	require.Len(t, templates, 3)
	assert.Equal(t, "Push", templates[0].Name)
	assert.Equal(t, "Pull", templates[1].Name)
	assert.Equal(t, "Legs", templates[2].Name)
	for _, template := range templates {
		assert.Len(t, template.Exercises, 6)
	}
}

func TestLoadState_DoesNotReseedExistingTemplates(t *testing.T) {
	ctx := context.Background()
	kvStore := memory.New()
	templateRepo := kv.NewTemplateRepository(kvStore)
	sessionRepo := kv.NewSessionRepository(kvStore)

	custom := []domain.DayTemplate{{ID: "day-custom", Name: "Full Body", Color: domain.ColorAmber}}
	require.NoError(t, templateRepo.Save(ctx, custom))

	state, err := service.LoadState(ctx, templateRepo, sessionRepo)
	require.NoError(t, err)
	assert.Equal(t, custom, state.Templates())
}

func TestTemplateService_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTemplateService(t)

	created, err := svc.CreateTemplate(ctx, "Arms", domain.ColorPurple, []domain.TemplateExercise{
		{Name: "Barbell Curls", Sets: 4, Reps: "10-12"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	require.Len(t, created.Exercises, 1)
	// exercises get stable ids assigned on create
	assert.NotEmpty(t, created.Exercises[0].ID)

	got, err := svc.GetTemplate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestTemplateService_CreateNormalizesUnknownColor(t *testing.T) {
	created, err := newTemplateServiceOnly(t).CreateTemplate(context.Background(), "Cardio", domain.ColorKey("neon"), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ColorGray, created.Color)
}

func newTemplateServiceOnly(t *testing.T) service.TemplateService {
	svc, _ := newTemplateService(t)
	return svc
}

func TestTemplateService_UpdateKeepsID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTemplateService(t)

	templates := svc.ListTemplates(ctx)
	original := templates[0]

	updated, err := svc.UpdateTemplate(ctx, original.ID, "Push Day", domain.ColorOrange, original.Exercises)
	require.NoError(t, err)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, "Push Day", updated.Name)
	assert.Equal(t, domain.ColorOrange, updated.Color)
	// existing exercise ids are untouched so history keeps matching
	assert.Equal(t, original.Exercises[0].ID, updated.Exercises[0].ID)
}

func TestTemplateService_UpdateUnknown(t *testing.T) {
	svc, _ := newTemplateService(t)
	_, err := svc.UpdateTemplate(context.Background(), "nope", "X", domain.ColorGray, nil)
	assert.ErrorIs(t, err, service.ErrTemplateNotFound)
}

func TestTemplateService_DeletePersists(t *testing.T) {
	ctx := context.Background()
	kvStore := memory.New()
	templateRepo := kv.NewTemplateRepository(kvStore)
	sessionRepo := kv.NewSessionRepository(kvStore)

	state, err := service.LoadState(ctx, templateRepo, sessionRepo)
	require.NoError(t, err)
	svc := service.NewTemplateService(state, templateRepo)

	templates := svc.ListTemplates(ctx)
	require.NoError(t, svc.DeleteTemplate(ctx, templates[0].ID))
	assert.Len(t, svc.ListTemplates(ctx), len(templates)-1)

	// the change reached the store, not just memory
	persisted, err := templateRepo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, persisted, len(templates)-1)
}
