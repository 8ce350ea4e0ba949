package luna

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/togetherforward/forward/internal/contract"
	"github.com/togetherforward/forward/internal/llm"
)

// OptimizeService narrates portfolio analysis findings as suggestions the
// couple can act on. When the LLM fails it falls back to a deterministic
// rendering of the findings, so the optimization stage always has content.
type OptimizeService interface {
	Optimize(ctx context.Context, req contract.OptimizeRequest) (*contract.OptimizeResponse, error)
}

type optimizeService struct {
	client   llm.LLMClient
	observer llm.Observer
}

// NewOptimizeService creates an OptimizeService backed by an LLM client.
func NewOptimizeService(client llm.LLMClient, observer llm.Observer) OptimizeService {
	if observer == nil {
		observer = llm.NoopObserver{}
	}
	return &optimizeService{client: client, observer: observer}
}

// optimizeLLMResponse is the JSON structure expected from the LLM.
type optimizeLLMResponse struct {
	Summary     string                        `json:"summary"`
	Suggestions []contract.OptimizeSuggestion `json:"suggestions"`
}

func (s *optimizeService) Optimize(ctx context.Context, req contract.OptimizeRequest) (*contract.OptimizeResponse, error) {
	if req.Analysis.DreamCount == 0 {
		return nil, fmt.Errorf("analysis covers no dreams")
	}

	resp, err := s.generate(ctx, req.Analysis)
	if err != nil {
		return deterministicOptimize(req.Analysis), nil
	}
	return resp, nil
}

func (s *optimizeService) generate(ctx context.Context, analysis contract.AnalyzeResponse) (*contract.OptimizeResponse, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskOptimize,
		SystemPrompt: optimizeSystemPrompt,
		UserPrompt:   buildOptimizePrompt(analysis),
	})
	if err != nil {
		return nil, fmt.Errorf("llm optimize failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[optimizeLLMResponse](resp.Text, validateOptimizeResponse)
	if err != nil {
		return nil, fmt.Errorf("extracting optimize response: %w", err)
	}

	// The model must not invent dream ids; strip any it did not receive.
	known := make(map[string]bool, analysis.DreamCount*2)
	for _, f := range analysis.Findings {
		known[f.DreamIDs[0]] = true
		known[f.DreamIDs[1]] = true
	}
	for i, sug := range parsed.Suggestions {
		kept := sug.DreamIDs[:0]
		for _, id := range sug.DreamIDs {
			if known[id] {
				kept = append(kept, id)
			}
		}
		parsed.Suggestions[i].DreamIDs = kept
	}

	return &contract.OptimizeResponse{
		GeneratedAt: time.Now().UTC(),
		Summary:     parsed.Summary,
		Suggestions: parsed.Suggestions,
		Source:      "llm",
	}, nil
}

func validateOptimizeResponse(resp optimizeLLMResponse) error {
	if strings.TrimSpace(resp.Summary) == "" {
		return fmt.Errorf("summary field is required")
	}
	for i, s := range resp.Suggestions {
		if strings.TrimSpace(s.Text) == "" {
			return fmt.Errorf("suggestion %d has no text", i)
		}
	}
	return nil
}

func buildOptimizePrompt(analysis contract.AnalyzeResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Active dreams: %d\n", analysis.DreamCount)
	fmt.Fprintf(&b, "Monthly commitment: %s\n", formatCents(analysis.MonthlyCommitCents))
	fmt.Fprintf(&b, "Savings capacity: %s\n", formatCents(analysis.SavingsCapacityCents))
	fmt.Fprintf(&b, "Over-committed: %t\n", analysis.OverCommitted)

	if len(analysis.Findings) == 0 {
		b.WriteString("\nNo conflicts or synergies were found.\n")
		return b.String()
	}

	b.WriteString("\nFindings:\n")
	for i, f := range analysis.Findings {
		fmt.Fprintf(&b, "%d. [%s] dreams %s and %s: %s\n",
			i+1, f.Kind, f.DreamIDs[0], f.DreamIDs[1], f.Reason)
	}

	return b.String()
}

// deterministicOptimize renders findings directly, without the LLM.
func deterministicOptimize(analysis contract.AnalyzeResponse) *contract.OptimizeResponse {
	summary := fmt.Sprintf("You are saving %s per month of a %s capacity across %d dreams.",
		formatCents(analysis.MonthlyCommitCents), formatCents(analysis.SavingsCapacityCents), analysis.DreamCount)
	if analysis.OverCommitted {
		summary = fmt.Sprintf("Your %d dreams together need %s per month, more than your %s capacity.",
			analysis.DreamCount, formatCents(analysis.MonthlyCommitCents), formatCents(analysis.SavingsCapacityCents))
	}

	suggestions := make([]contract.OptimizeSuggestion, 0, len(analysis.Findings))
	for _, f := range analysis.Findings {
		text := f.Reason
		switch f.Kind {
		case contract.FindingConflict:
			text = "Consider staggering these dreams: " + f.Reason
		case contract.FindingSynergy:
			text = "Worth combining: " + f.Reason
		}
		suggestions = append(suggestions, contract.OptimizeSuggestion{
			Text:     text,
			DreamIDs: []string{f.DreamIDs[0], f.DreamIDs[1]},
		})
	}

	return &contract.OptimizeResponse{
		GeneratedAt: time.Now().UTC(),
		Summary:     summary,
		Suggestions: suggestions,
		Source:      "deterministic",
	}
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
