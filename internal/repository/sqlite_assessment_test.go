package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/testutil"
)

func newSession(code string) *domain.AssessmentSession {
	now := time.Now().UTC()
	return &domain.AssessmentSession{
		ID:        uuid.New().String(),
		JoinCode:  code,
		Status:    domain.AssessmentOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSQLiteAssessmentRepo_JoinCodeLookupIsCaseInsensitive(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAssessmentRepo(database)
	ctx := context.Background()

	s := newSession("AB12CD")
	require.NoError(t, repo.CreateSession(ctx, s))

	got, err := repo.GetSessionByJoinCode(ctx, "ab12cd")
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	_, err = repo.GetSessionByJoinCode(ctx, "ZZZZZZ")
	assert.Error(t, err)
}

func TestSQLiteAssessmentRepo_JoinCodeUnique(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAssessmentRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.CreateSession(ctx, newSession("SAME00")))
	assert.Error(t, repo.CreateSession(ctx, newSession("SAME00")))
}

func TestSQLiteAssessmentRepo_UpsertAnswerOverwrites(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAssessmentRepo(database)
	ctx := context.Background()

	s := newSession("QQ11WW")
	require.NoError(t, repo.CreateSession(ctx, s))

	a := &domain.Answer{
		SessionID: s.ID, Partner: domain.PartnerA,
		QuestionID: "fin-1", Value: 2, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.UpsertAnswer(ctx, a))

	a.Value = 5
	require.NoError(t, repo.UpsertAnswer(ctx, a))

	answers, err := repo.ListAnswers(ctx, s.ID, domain.PartnerA)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, 5, answers[0].Value)

	// Partner B has no answers yet.
	answers, err = repo.ListAnswers(ctx, s.ID, domain.PartnerB)
	require.NoError(t, err)
	assert.Empty(t, answers)
}

func TestSQLiteLocalKV_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	kv := NewSQLiteLocalKV(database)
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "pending_invite_code")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "pending_invite_code", "INV123"))
	require.NoError(t, kv.Set(ctx, "pending_invite_code", "INV456"))

	v, ok, err := kv.Get(ctx, "pending_invite_code")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "INV456", v)

	require.NoError(t, kv.Delete(ctx, "pending_invite_code"))
	_, ok, err = kv.Get(ctx, "pending_invite_code")
	require.NoError(t, err)
	assert.False(t, ok)
}
