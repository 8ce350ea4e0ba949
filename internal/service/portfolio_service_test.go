package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/togetherforward/forward/internal/contract"
	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/repository"
	"github.com/togetherforward/forward/internal/testutil"
)

type portfolioFixture struct {
	svc      PortfolioService
	dreams   repository.DreamRepo
	profiles repository.ProfileRepo
}

func newPortfolioFixture(t *testing.T, capacityCents int64) *portfolioFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	f := &portfolioFixture{
		dreams:   repository.NewSQLiteDreamRepo(database),
		profiles: repository.NewSQLiteProfileRepo(database),
	}
	require.NoError(t, f.profiles.Upsert(context.Background(), &domain.CoupleProfile{
		DisplayName:          "Sam",
		PartnerName:          "Alex",
		SavingsCapacityCents: capacityCents,
		Currency:             "USD",
	}))
	f.svc = NewPortfolioService(f.dreams, f.profiles)
	return f
}

func (f *portfolioFixture) addDream(t *testing.T, title string, category domain.DreamCategory, monthsOut int, monthlyCents int64) *domain.Dream {
	t.Helper()
	d := testutil.NewTestDream(title,
		testutil.WithOwner("u1"),
		testutil.WithCategory(category),
		testutil.WithTargetDate(time.Now().UTC().AddDate(0, monthsOut, 0)),
		testutil.WithMonthlyContrib(monthlyCents),
	)
	require.NoError(t, f.dreams.Create(context.Background(), d))
	return d
}

func findingKinds(findings []contract.Finding) []contract.FindingKind {
	kinds := make([]contract.FindingKind, len(findings))
	for i, f := range findings {
		kinds[i] = f.Kind
	}
	return kinds
}

func TestPortfolio_ConflictWhenOverCapacity(t *testing.T) {
	f := newPortfolioFixture(t, 100000) // 1000.00/month capacity
	a := f.addDream(t, "Wedding", domain.CategoryWedding, 12, 70000)
	b := f.addDream(t, "House", domain.CategoryHome, 18, 60000)

	resp, err := f.svc.Analyze(context.Background(), contract.AnalyzeRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Findings, 1)
	finding := resp.Findings[0]
	assert.Equal(t, contract.FindingConflict, finding.Kind)
	assert.Equal(t, [2]string{a.ID, b.ID}, finding.DreamIDs)
	assert.Contains(t, finding.Reason, "capacity")

	assert.Equal(t, int64(130000), resp.MonthlyCommitCents)
	assert.True(t, resp.OverCommitted)
}

func TestPortfolio_NoConflictWhenWindowsDisjoint(t *testing.T) {
	f := newPortfolioFixture(t, 100000)

	// The trip's saving window ended before the house dream started.
	tripEnd := time.Now().UTC().AddDate(0, -1, 0)
	a := testutil.NewTestDream("Trip",
		testutil.WithOwner("u1"),
		testutil.WithCategory(domain.CategoryTravel),
		testutil.WithTargetDate(tripEnd),
		testutil.WithMonthlyContrib(70000),
	)
	a.CreatedAt = time.Now().UTC().AddDate(0, -6, 0)
	require.NoError(t, f.dreams.Create(context.Background(), a))
	f.addDream(t, "House", domain.CategoryHome, 24, 60000)

	resp, err := f.svc.Analyze(context.Background(), contract.AnalyzeRequest{})
	require.NoError(t, err)
	assert.NotContains(t, findingKinds(resp.Findings), contract.FindingConflict)
}

func TestPortfolio_SynergySharedCategory(t *testing.T) {
	f := newPortfolioFixture(t, 1000000)
	f.addDream(t, "Honeymoon", domain.CategoryTravel, 10, 10000)
	f.addDream(t, "Anniversary trip", domain.CategoryTravel, 20, 10000)

	resp, err := f.svc.Analyze(context.Background(), contract.AnalyzeRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Findings, 1)
	assert.Equal(t, contract.FindingSynergy, resp.Findings[0].Kind)
	assert.Contains(t, resp.Findings[0].Reason, "share a fund")
}

func TestPortfolio_SynergyRollover(t *testing.T) {
	f := newPortfolioFixture(t, 1000000)
	early := f.addDream(t, "Trip", domain.CategoryTravel, 3, 10000)
	late := f.addDream(t, "House", domain.CategoryHome, 24, 10000)

	resp, err := f.svc.Analyze(context.Background(), contract.AnalyzeRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Findings, 1)
	finding := resp.Findings[0]
	assert.Equal(t, contract.FindingSynergy, finding.Kind)
	assert.Equal(t, [2]string{early.ID, late.ID}, finding.DreamIDs)
	assert.Contains(t, finding.Reason, "roll into")
}

func TestPortfolio_NoActiveDreams(t *testing.T) {
	f := newPortfolioFixture(t, 100000)

	_, err := f.svc.Analyze(context.Background(), contract.AnalyzeRequest{})
	var perr *contract.PortfolioError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, contract.ErrNoActiveDreams, perr.Code)
}

func TestPortfolio_PausedDreamsIgnored(t *testing.T) {
	f := newPortfolioFixture(t, 100000)
	f.addDream(t, "Active", domain.CategoryCustom, 6, 20000)

	paused := testutil.NewTestDream("Paused",
		testutil.WithOwner("u1"),
		testutil.WithDreamStatus(domain.DreamPaused),
		testutil.WithMonthlyContrib(500000),
	)
	require.NoError(t, f.dreams.Create(context.Background(), paused))

	resp, err := f.svc.Analyze(context.Background(), contract.AnalyzeRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.DreamCount)
	assert.Equal(t, int64(20000), resp.MonthlyCommitCents)
	assert.False(t, resp.OverCommitted)
}

func TestPortfolio_NoCapacityWarns(t *testing.T) {
	f := newPortfolioFixture(t, 0)
	f.addDream(t, "A", domain.CategoryCustom, 6, 500000)
	f.addDream(t, "B", domain.CategoryFinance, 6, 500000)

	resp, err := f.svc.Analyze(context.Background(), contract.AnalyzeRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Warnings)
	assert.NotContains(t, findingKinds(resp.Findings), contract.FindingConflict)
}
