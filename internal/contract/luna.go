package contract

import "time"

// DreamDraftRequest asks Luna to turn free text into a structured dream
// draft.
type DreamDraftRequest struct {
	Prompt string
}

// DraftMilestone is one suggested milestone inside a draft.
type DraftMilestone struct {
	Title        string `json:"title"`
	MonthsBefore int    `json:"months_before"`
}

// DreamDraft is the structured shape Luna must return for a draft request.
type DreamDraft struct {
	Title              string           `json:"title"`
	Category           string           `json:"category"`
	TargetMonths       int              `json:"target_months"`
	TargetAmountCents  int64            `json:"target_amount_cents"`
	Milestones         []DraftMilestone `json:"milestones"`
	BudgetHints        []string         `json:"budget_hints,omitempty"`
	ClarifyingQuestion string           `json:"clarifying_question,omitempty"`
}

type DreamDraftResponse struct {
	GeneratedAt time.Time
	Draft       DreamDraft
	Warnings    []string
}

// ChatRequest is one user turn in a Luna conversation. Context carries the
// rendered portfolio summary the reply should be grounded in.
type ChatRequest struct {
	Message string
	Context string
}

type ChatResponse struct {
	GeneratedAt time.Time
	Reply       string
}

// OptimizeRequest asks Luna to narrate portfolio findings as suggestions.
type OptimizeRequest struct {
	Analysis AnalyzeResponse
}

// OptimizeSuggestion is one actionable suggestion tied to the finding that
// produced it.
type OptimizeSuggestion struct {
	Text     string   `json:"text"`
	DreamIDs []string `json:"dream_ids,omitempty"`
}

type OptimizeResponse struct {
	GeneratedAt time.Time
	Summary     string
	Suggestions []OptimizeSuggestion
	Source      string // "llm" or "deterministic"
}
