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

func newProfileService(t *testing.T) ProfileService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewProfileService(repository.NewSQLiteProfileRepo(database))
}

func TestProfileService_UpdateDefaultsCurrency(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	p := &domain.CoupleProfile{SavingsCapacityCents: 250_000}
	require.NoError(t, svc.Update(ctx, p))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCurrency, got.Currency)
	assert.Equal(t, int64(250_000), got.SavingsCapacityCents)
}

func TestProfileService_UpdateRejectsNegativeCapacity(t *testing.T) {
	svc := newProfileService(t)

	err := svc.Update(context.Background(), &domain.CoupleProfile{SavingsCapacityCents: -1})
	assert.ErrorContains(t, err, "must not be negative")
}

func TestProfileService_UpdateOverwrites(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	require.NoError(t, svc.Update(ctx, &domain.CoupleProfile{Currency: "EUR", SavingsCapacityCents: 100_000}))
	require.NoError(t, svc.Update(ctx, &domain.CoupleProfile{Currency: "EUR", SavingsCapacityCents: 180_000}))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(180_000), got.SavingsCapacityCents)
}
