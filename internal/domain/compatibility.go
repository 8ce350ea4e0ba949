package domain

import "fmt"

// Dimension is one axis of the compatibility quiz.
type Dimension string

const (
	DimFinances      Dimension = "finances"
	DimLifestyle     Dimension = "lifestyle"
	DimFamily        Dimension = "family"
	DimCareer        Dimension = "career"
	DimCommunication Dimension = "communication"
)

// Question is one quiz prompt. Both partners answer every question on a
// 1 (strongly disagree) to 5 (strongly agree) scale.
type Question struct {
	ID        string
	Dimension Dimension
	Prompt    string
}

// QuizQuestions is the fixed question set, three per dimension.
var QuizQuestions = []Question{
	{ID: "fin-1", Dimension: DimFinances, Prompt: "We should keep a shared budget for every big goal."},
	{ID: "fin-2", Dimension: DimFinances, Prompt: "Saving comes before spending on comfort."},
	{ID: "fin-3", Dimension: DimFinances, Prompt: "Large purchases need both of us to agree first."},
	{ID: "life-1", Dimension: DimLifestyle, Prompt: "Where we live matters more than what we earn."},
	{ID: "life-2", Dimension: DimLifestyle, Prompt: "Travel is worth going over budget for."},
	{ID: "life-3", Dimension: DimLifestyle, Prompt: "Weekends should mostly be spent together."},
	{ID: "fam-1", Dimension: DimFamily, Prompt: "Family opinions should shape our biggest decisions."},
	{ID: "fam-2", Dimension: DimFamily, Prompt: "We agree on whether and when to grow our family."},
	{ID: "fam-3", Dimension: DimFamily, Prompt: "Living near relatives is important to me."},
	{ID: "car-1", Dimension: DimCareer, Prompt: "A career move that requires relocating is on the table."},
	{ID: "car-2", Dimension: DimCareer, Prompt: "One of us working less for the family is acceptable."},
	{ID: "car-3", Dimension: DimCareer, Prompt: "Ambition at work should never crowd out our plans."},
	{ID: "com-1", Dimension: DimCommunication, Prompt: "We talk about money without it turning into a fight."},
	{ID: "com-2", Dimension: DimCommunication, Prompt: "Disagreements get resolved the same week they start."},
	{ID: "com-3", Dimension: DimCommunication, Prompt: "I know what my partner's top goal is right now."},
}

// dimensionWeights sum to 1. Finances and communication carry the most
// weight because they predict goal completion best in the product data.
var dimensionWeights = map[Dimension]float64{
	DimFinances:      0.25,
	DimLifestyle:     0.15,
	DimFamily:        0.20,
	DimCareer:        0.15,
	DimCommunication: 0.25,
}

// DimensionScore is the alignment for one quiz axis, 0-100.
type DimensionScore struct {
	Dimension Dimension
	Score     float64
}

// CompatibilityResult is the scored outcome of a completed session.
type CompatibilityResult struct {
	Overall    float64
	Band       string
	Dimensions []DimensionScore
}

// Band thresholds for the overall score.
const (
	bandAligned      = 85
	bandMostly       = 65
	bandConversation = 45
)

func bandFor(overall float64) string {
	switch {
	case overall >= bandAligned:
		return "aligned"
	case overall >= bandMostly:
		return "mostly aligned"
	case overall >= bandConversation:
		return "worth a conversation"
	default:
		return "talk soon"
	}
}

// ScoreCompatibility computes per-dimension and overall alignment from both
// partners' answers, keyed by question ID. Every question must be answered
// by both partners; a missing answer is an error, not a zero.
func ScoreCompatibility(a, b map[string]int) (*CompatibilityResult, error) {
	type agg struct {
		diffSum float64
		count   int
	}
	byDim := map[Dimension]*agg{}

	for _, q := range QuizQuestions {
		av, ok := a[q.ID]
		if !ok {
			return nil, fmt.Errorf("partner A has not answered %s", q.ID)
		}
		bv, ok := b[q.ID]
		if !ok {
			return nil, fmt.Errorf("partner B has not answered %s", q.ID)
		}
		if av < 1 || av > 5 || bv < 1 || bv > 5 {
			return nil, fmt.Errorf("answer for %s out of range 1-5", q.ID)
		}
		d := byDim[q.Dimension]
		if d == nil {
			d = &agg{}
			byDim[q.Dimension] = d
		}
		diff := float64(av - bv)
		if diff < 0 {
			diff = -diff
		}
		d.diffSum += diff
		d.count++
	}

	res := &CompatibilityResult{}
	var overall float64
	for _, dim := range []Dimension{DimFinances, DimLifestyle, DimFamily, DimCareer, DimCommunication} {
		d := byDim[dim]
		score := 100 - (d.diffSum/float64(d.count))*25
		res.Dimensions = append(res.Dimensions, DimensionScore{Dimension: dim, Score: score})
		overall += score * dimensionWeights[dim]
	}
	res.Overall = overall
	res.Band = bandFor(overall)
	return res, nil
}
