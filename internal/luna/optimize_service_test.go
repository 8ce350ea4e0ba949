package luna

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/togetherforward/forward/internal/contract"
	"github.com/togetherforward/forward/internal/llm"
)

func sampleAnalysis() contract.AnalyzeResponse {
	return contract.AnalyzeResponse{
		GeneratedAt:          time.Now().UTC(),
		DreamCount:           2,
		MonthlyCommitCents:   180000,
		SavingsCapacityCents: 150000,
		OverCommitted:        true,
		Findings: []contract.Finding{
			{
				Kind:     contract.FindingConflict,
				DreamIDs: [2]string{"dream-a", "dream-b"},
				Reason:   "both save during 2026 and together need 1800.00 against a 1500.00 capacity",
			},
			{
				Kind:     contract.FindingSynergy,
				DreamIDs: [2]string{"dream-a", "dream-b"},
				Reason:   "both are travel dreams and could share a fund",
			},
		},
	}
}

func TestOptimizeService_LLMSuggestions(t *testing.T) {
	client := &stubLLMClient{response: `{
		"summary": "You are over-committed; stagger the two dreams.",
		"suggestions": [
			{"text": "Push the second trip out by six months.", "dream_ids": ["dream-a", "dream-b"]},
			{"text": "Merge both trips into one travel fund.", "dream_ids": ["dream-a", "dream-b"]}
		]
	}`}

	svc := NewOptimizeService(client, nil)
	resp, err := svc.Optimize(context.Background(), contract.OptimizeRequest{Analysis: sampleAnalysis()})

	require.NoError(t, err)
	assert.Equal(t, llm.TaskOptimize, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "conflict")
	assert.Contains(t, client.lastReq.UserPrompt, "dream-a")
	assert.Equal(t, "llm", resp.Source)
	assert.Equal(t, "You are over-committed; stagger the two dreams.", resp.Summary)
	require.Len(t, resp.Suggestions, 2)
	assert.Equal(t, []string{"dream-a", "dream-b"}, resp.Suggestions[0].DreamIDs)
}

func TestOptimizeService_InventedDreamIDsStripped(t *testing.T) {
	client := &stubLLMClient{response: `{
		"summary": "ok",
		"suggestions": [{"text": "do something", "dream_ids": ["dream-a", "dream-x"]}]
	}`}

	svc := NewOptimizeService(client, nil)
	resp, err := svc.Optimize(context.Background(), contract.OptimizeRequest{Analysis: sampleAnalysis()})

	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, []string{"dream-a"}, resp.Suggestions[0].DreamIDs)
}

func TestOptimizeService_FallbackOnClientError(t *testing.T) {
	client := &stubLLMClient{err: llm.ErrOllamaUnavailable}

	svc := NewOptimizeService(client, nil)
	resp, err := svc.Optimize(context.Background(), contract.OptimizeRequest{Analysis: sampleAnalysis()})

	require.NoError(t, err)
	assert.Equal(t, "deterministic", resp.Source)
	assert.Contains(t, resp.Summary, "1800.00")
	assert.Contains(t, resp.Summary, "1500.00")
	require.Len(t, resp.Suggestions, 2)
	assert.Contains(t, resp.Suggestions[0].Text, "staggering")
	assert.Contains(t, resp.Suggestions[1].Text, "combining")
}

func TestOptimizeService_FallbackOnInvalidOutput(t *testing.T) {
	client := &stubLLMClient{response: "no json here, sorry"}

	svc := NewOptimizeService(client, nil)
	resp, err := svc.Optimize(context.Background(), contract.OptimizeRequest{Analysis: sampleAnalysis()})

	require.NoError(t, err)
	assert.Equal(t, "deterministic", resp.Source)
}

func TestOptimizeService_NoDreams(t *testing.T) {
	svc := NewOptimizeService(&stubLLMClient{response: "{}"}, nil)

	_, err := svc.Optimize(context.Background(), contract.OptimizeRequest{})
	require.Error(t, err)
}

func TestOptimizeService_NoFindings(t *testing.T) {
	analysis := sampleAnalysis()
	analysis.Findings = nil
	analysis.OverCommitted = false

	client := &stubLLMClient{response: `{"summary": "All clear, keep going.", "suggestions": []}`}
	svc := NewOptimizeService(client, nil)

	resp, err := svc.Optimize(context.Background(), contract.OptimizeRequest{Analysis: analysis})

	require.NoError(t, err)
	assert.Contains(t, client.lastReq.UserPrompt, "No conflicts or synergies")
	assert.Empty(t, resp.Suggestions)
}
