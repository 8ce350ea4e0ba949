package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/togetherforward/forward/internal/testutil"
)

func TestSQLiteDreamRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDreamRepo(database)
	ctx := context.Background()

	target := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	dream := testutil.NewTestDream("Lisbon wedding",
		testutil.WithCategory("wedding"),
		testutil.WithTargetDate(target),
		testutil.WithTargetAmount(2_500_000),
	)
	require.NoError(t, repo.Create(ctx, dream))

	got, err := repo.GetByID(ctx, dream.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon wedding", got.Title)
	assert.Equal(t, dream.Category, got.Category)
	assert.Equal(t, int64(2_500_000), got.TargetAmountCents)
	require.NotNil(t, got.TargetDate)
	assert.Equal(t, "2027-06-01", got.TargetDate.Format("2006-01-02"))
}

func TestSQLiteDreamRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDreamRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.Error(t, err)
}

func TestSQLiteDreamRepo_ListByOwnerExcludesArchived(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDreamRepo(database)
	ctx := context.Background()

	active := testutil.NewTestDream("House fund", testutil.WithOwner("user-1"))
	archived := testutil.NewTestDream("Old plan", testutil.WithOwner("user-1"))
	other := testutil.NewTestDream("Not mine", testutil.WithOwner("user-2"))
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, archived))
	require.NoError(t, repo.Create(ctx, other))
	require.NoError(t, repo.Archive(ctx, archived.ID))

	dreams, err := repo.ListByOwner(ctx, "user-1", false)
	require.NoError(t, err)
	require.Len(t, dreams, 1)
	assert.Equal(t, active.ID, dreams[0].ID)

	all, err := repo.ListByOwner(ctx, "user-1", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLiteDreamRepo_DeleteCascades(t *testing.T) {
	database := testutil.NewTestDB(t)
	dreams := NewSQLiteDreamRepo(database)
	milestones := NewSQLiteMilestoneRepo(database)
	tasks := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	dream := testutil.NewTestDream("Cascade me")
	require.NoError(t, dreams.Create(ctx, dream))
	require.NoError(t, milestones.Create(ctx, testutil.NewTestMilestone(dream.ID, "Book venue", 1)))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(dream.ID, "Call caterer")))

	require.NoError(t, dreams.Delete(ctx, dream.ID))

	ms, err := milestones.ListByDream(ctx, dream.ID)
	require.NoError(t, err)
	assert.Empty(t, ms)

	ts, err := tasks.ListByDream(ctx, dream.ID)
	require.NoError(t, err)
	assert.Empty(t, ts)
}
