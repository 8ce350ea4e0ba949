package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/repository"
	"github.com/togetherforward/forward/internal/testutil"
)

func newDreamService(t *testing.T) (DreamService, repository.DreamRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteDreamRepo(database)
	return NewDreamService(repo), repo
}

func TestDreamService_CreateFillsDefaults(t *testing.T) {
	svc, _ := newDreamService(t)
	ctx := context.Background()

	d := &domain.Dream{Title: "Sailing trip", Category: domain.CategoryTravel, OwnerID: "u1"}
	require.NoError(t, svc.Create(ctx, d))

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, domain.DreamActive, d.Status)
	assert.False(t, d.CreatedAt.IsZero())

	got, err := svc.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sailing trip", got.Title)
}

func TestDreamService_CreateRejectsInvalid(t *testing.T) {
	svc, _ := newDreamService(t)
	ctx := context.Background()

	err := svc.Create(ctx, &domain.Dream{Category: domain.CategoryTravel})
	assert.ErrorContains(t, err, "title is required")

	err = svc.Create(ctx, &domain.Dream{Title: "x", Category: "boat"})
	assert.ErrorContains(t, err, "unknown dream category")
}

func TestDreamService_CountByOwner(t *testing.T) {
	svc, _ := newDreamService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, testutil.NewTestDream("A", testutil.WithOwner("u1"))))
	require.NoError(t, svc.Create(ctx, testutil.NewTestDream("B", testutil.WithOwner("u1"))))
	require.NoError(t, svc.Create(ctx, testutil.NewTestDream("C", testutil.WithOwner("u2"))))

	count, err := svc.CountByOwner(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = svc.CountByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDreamService_CountExcludesArchived(t *testing.T) {
	svc, _ := newDreamService(t)
	ctx := context.Background()

	d := testutil.NewTestDream("A", testutil.WithOwner("u1"))
	require.NoError(t, svc.Create(ctx, d))
	require.NoError(t, svc.Archive(ctx, d.ID))

	count, err := svc.CountByOwner(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDreamService_DeleteRequiresArchive(t *testing.T) {
	svc, _ := newDreamService(t)
	ctx := context.Background()

	d := testutil.NewTestDream("A", testutil.WithOwner("u1"))
	require.NoError(t, svc.Create(ctx, d))

	err := svc.Delete(ctx, d.ID, false)
	assert.ErrorContains(t, err, "archived before deletion")

	require.NoError(t, svc.Delete(ctx, d.ID, true))
	_, err = svc.GetByID(ctx, d.ID)
	assert.Error(t, err)
}
