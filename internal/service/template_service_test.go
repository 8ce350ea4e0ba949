package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/repository"
	"github.com/togetherforward/forward/internal/testutil"
)

func TestTemplateService_ListBuiltins(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewTemplateService("", testutil.NewTestUoW(database))

	templates, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, templates)

	byID := make(map[string]GoalTemplate)
	for _, tm := range templates {
		byID[tm.ID] = tm
	}
	assert.Contains(t, byID, "wedding")
	assert.Contains(t, byID, "home")
	assert.Contains(t, byID, "travel")
	assert.Equal(t, 1, templates[0].NumericID)
}

func TestTemplateService_GetByNameAndNumber(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewTemplateService("", testutil.NewTestUoW(database))
	ctx := context.Background()

	byName, err := svc.Get(ctx, "WEDDING")
	require.NoError(t, err)
	assert.Equal(t, "wedding", byName.ID)

	byNum, err := svc.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 1, byNum.NumericID)

	_, err = svc.Get(ctx, "yacht")
	assert.ErrorContains(t, err, "not found")
}

func TestTemplateService_InitDreamPersistsEverything(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewTemplateService("", testutil.NewTestUoW(database))
	ctx := context.Background()

	target := time.Now().UTC().AddDate(1, 6, 0)
	dream, err := svc.InitDream(ctx, "wedding", "Our wedding", "u1", target, 2500000)
	require.NoError(t, err)
	require.NotNil(t, dream)
	assert.Equal(t, domain.CategoryWedding, dream.Category)
	assert.Equal(t, "u1", dream.OwnerID)

	milestones, err := repository.NewSQLiteMilestoneRepo(database).ListByDream(ctx, dream.ID)
	require.NoError(t, err)
	assert.Len(t, milestones, 4)

	tasks, err := repository.NewSQLiteTaskRepo(database).ListByDream(ctx, dream.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 6)

	budget, err := repository.NewSQLiteBudgetRepo(database).ListByDream(ctx, dream.ID)
	require.NoError(t, err)
	require.Len(t, budget, 7)
	var planned int64
	for _, c := range budget {
		planned += c.PlannedCents
	}
	assert.Equal(t, int64(2500000), planned, "budget categories carve up the full target")
}

func TestTemplateService_InitDreamRollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: boom}
	svc := NewTemplateService("", uow)
	ctx := context.Background()

	_, err := svc.InitDream(ctx, "travel", "Japan", "u1", time.Now().AddDate(1, 0, 0), 800000)
	require.ErrorIs(t, err, boom)

	// Nothing survives a mid-transaction failure.
	dreams, err := repository.NewSQLiteDreamRepo(database).List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, dreams)
}

func TestTemplateService_CustomTemplateDir(t *testing.T) {
	database := testutil.NewTestDB(t)
	dir := t.TempDir()
	writeTestTemplate(t, dir, "engagement.json", `{
		"id": "engagement",
		"name": "Engagement party",
		"version": "1.0",
		"category": "wedding",
		"milestones": [{"id": "book", "title": "Book a venue", "months_before": 2}]
	}`)
	svc := NewTemplateService(dir, testutil.NewTestUoW(database))

	got, err := svc.Get(context.Background(), "engagement")
	require.NoError(t, err)
	assert.Equal(t, "Engagement party", got.Name)
}
