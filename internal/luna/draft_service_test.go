package luna

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/togetherforward/forward/internal/contract"
	"github.com/togetherforward/forward/internal/llm"
)

// stubLLMClient returns a canned response and records the last request.
// Shared by the draft, chat and optimize tests.
type stubLLMClient struct {
	response string
	err      error
	lastReq  llm.GenerateRequest
	calls    int
}

func (m *stubLLMClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "test"}, nil
}

func (m *stubLLMClient) Available(ctx context.Context) bool {
	return m.err == nil
}

func TestDreamDraftService_FullDraft(t *testing.T) {
	client := &stubLLMClient{response: `{
		"title": "Wedding in Lisbon",
		"category": "wedding",
		"target_months": 18,
		"target_amount_cents": 2500000,
		"milestones": [
			{"title": "Book the venue", "months_before": 12},
			{"title": "Send invitations", "months_before": 3}
		],
		"budget_hints": ["venue", "catering"]
	}`}

	svc := NewDreamDraftService(client, nil)
	resp, err := svc.Draft(context.Background(), contract.DreamDraftRequest{
		Prompt: "we want to get married in lisbon in about a year and a half, 25k budget",
	})

	require.NoError(t, err)
	assert.Equal(t, llm.TaskDraft, client.lastReq.Task)
	assert.Equal(t, "Wedding in Lisbon", resp.Draft.Title)
	assert.Equal(t, "wedding", resp.Draft.Category)
	assert.Equal(t, 18, resp.Draft.TargetMonths)
	assert.Equal(t, int64(2500000), resp.Draft.TargetAmountCents)
	assert.Len(t, resp.Draft.Milestones, 2)
	assert.Empty(t, resp.Warnings)
	assert.False(t, resp.GeneratedAt.IsZero())
}

func TestDreamDraftService_UnknownCategoryBecomesCustom(t *testing.T) {
	client := &stubLLMClient{response: `{"title":"Buy a yacht","category":"yacht","target_months":48}`}

	svc := NewDreamDraftService(client, nil)
	resp, err := svc.Draft(context.Background(), contract.DreamDraftRequest{Prompt: "a yacht"})

	require.NoError(t, err)
	assert.Equal(t, "custom", resp.Draft.Category)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "yacht")
}

func TestDreamDraftService_MissingTargetDefaultsToTwelveMonths(t *testing.T) {
	client := &stubLLMClient{response: `{"title":"Emergency fund","category":"finance"}`}

	svc := NewDreamDraftService(client, nil)
	resp, err := svc.Draft(context.Background(), contract.DreamDraftRequest{Prompt: "an emergency fund"})

	require.NoError(t, err)
	assert.Equal(t, 12, resp.Draft.TargetMonths)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "12 months")
}

func TestDreamDraftService_ClarifyingQuestionWithoutTitle(t *testing.T) {
	client := &stubLLMClient{response: `{"clarifying_question":"What kind of trip do you have in mind?","category":"travel"}`}

	svc := NewDreamDraftService(client, nil)
	resp, err := svc.Draft(context.Background(), contract.DreamDraftRequest{Prompt: "something fun"})

	require.NoError(t, err)
	assert.Empty(t, resp.Draft.Title)
	assert.Equal(t, "What kind of trip do you have in mind?", resp.Draft.ClarifyingQuestion)
}

func TestDreamDraftService_MilestoneBeyondWindowDropped(t *testing.T) {
	client := &stubLLMClient{response: `{
		"title": "New kitchen",
		"category": "home",
		"target_months": 6,
		"milestones": [
			{"title": "Get quotes", "months_before": 4},
			{"title": "Hire architect", "months_before": 9}
		]
	}`}

	svc := NewDreamDraftService(client, nil)
	resp, err := svc.Draft(context.Background(), contract.DreamDraftRequest{Prompt: "redo the kitchen"})

	require.NoError(t, err)
	require.Len(t, resp.Draft.Milestones, 1)
	assert.Equal(t, "Get quotes", resp.Draft.Milestones[0].Title)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "Hire architect")
}

func TestDreamDraftService_EmptyPrompt(t *testing.T) {
	client := &stubLLMClient{response: `{}`}

	svc := NewDreamDraftService(client, nil)
	_, err := svc.Draft(context.Background(), contract.DreamDraftRequest{Prompt: "   "})

	require.Error(t, err)
	assert.Zero(t, client.calls)
}

func TestDreamDraftService_InvalidOutput(t *testing.T) {
	client := &stubLLMClient{response: `{"category":"travel"}`}

	svc := NewDreamDraftService(client, nil)
	_, err := svc.Draft(context.Background(), contract.DreamDraftRequest{Prompt: "a trip"})

	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestDreamDraftService_ClientError(t *testing.T) {
	client := &stubLLMClient{err: llm.ErrOllamaUnavailable}

	svc := NewDreamDraftService(client, nil)
	_, err := svc.Draft(context.Background(), contract.DreamDraftRequest{Prompt: "a trip"})

	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrOllamaUnavailable)
}
