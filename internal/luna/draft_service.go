package luna

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/togetherforward/forward/internal/contract"
	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/llm"
)

// DreamDraftService turns a free-text description into a structured dream
// draft the creation flow can pre-fill.
type DreamDraftService interface {
	Draft(ctx context.Context, req contract.DreamDraftRequest) (*contract.DreamDraftResponse, error)
}

type dreamDraftService struct {
	client   llm.LLMClient
	observer llm.Observer
}

// NewDreamDraftService creates a DreamDraftService backed by an LLM client.
func NewDreamDraftService(client llm.LLMClient, observer llm.Observer) DreamDraftService {
	if observer == nil {
		observer = llm.NoopObserver{}
	}
	return &dreamDraftService{client: client, observer: observer}
}

func (s *dreamDraftService) Draft(ctx context.Context, req contract.DreamDraftRequest) (*contract.DreamDraftResponse, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, fmt.Errorf("draft prompt is empty")
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDraft,
		SystemPrompt: draftSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("llm dream draft failed: %w", err)
	}

	draft, err := llm.ExtractJSON[contract.DreamDraft](resp.Text, validateDreamDraft)
	if err != nil {
		return nil, fmt.Errorf("extracting dream draft: %w", err)
	}

	draft, warnings := normalizeDreamDraft(draft)

	return &contract.DreamDraftResponse{
		GeneratedAt: time.Now().UTC(),
		Draft:       draft,
		Warnings:    warnings,
	}, nil
}

func validateDreamDraft(d contract.DreamDraft) error {
	if strings.TrimSpace(d.Title) == "" && strings.TrimSpace(d.ClarifyingQuestion) == "" {
		return fmt.Errorf("either title or clarifying_question is required")
	}
	if d.TargetMonths < 0 {
		return fmt.Errorf("target_months must not be negative, got %d", d.TargetMonths)
	}
	if d.TargetAmountCents < 0 {
		return fmt.Errorf("target_amount_cents must not be negative, got %d", d.TargetAmountCents)
	}
	for i, m := range d.Milestones {
		if strings.TrimSpace(m.Title) == "" {
			return fmt.Errorf("milestone %d has no title", i)
		}
		if m.MonthsBefore < 0 {
			return fmt.Errorf("milestone %q has negative months_before", m.Title)
		}
	}
	return nil
}

// normalizeDreamDraft coerces model output into values the creation flow
// accepts, collecting a warning for every adjustment it makes.
func normalizeDreamDraft(d contract.DreamDraft) (contract.DreamDraft, []string) {
	var warnings []string

	d.Title = strings.TrimSpace(d.Title)
	d.ClarifyingQuestion = strings.TrimSpace(d.ClarifyingQuestion)

	cat := strings.ToLower(strings.TrimSpace(d.Category))
	if !domain.ValidDreamCategories[cat] {
		if cat != "" {
			warnings = append(warnings, fmt.Sprintf("unrecognized category %q, using custom", d.Category))
		}
		cat = string(domain.CategoryCustom)
	}
	d.Category = cat

	if d.TargetMonths == 0 && d.ClarifyingQuestion == "" {
		warnings = append(warnings, "no target date suggested, defaulting to 12 months")
		d.TargetMonths = 12
	}

	// Milestones further out than the target date itself make no sense.
	kept := d.Milestones[:0]
	for _, m := range d.Milestones {
		if m.MonthsBefore > d.TargetMonths {
			warnings = append(warnings, fmt.Sprintf("dropped milestone %q, it falls before the saving window starts", m.Title))
			continue
		}
		kept = append(kept, m)
	}
	d.Milestones = kept

	return d, warnings
}
