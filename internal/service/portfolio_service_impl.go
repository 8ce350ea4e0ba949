package service

import (
	"context"
	"fmt"
	"time"

	"github.com/togetherforward/forward/internal/contract"
	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/repository"
)

type portfolioService struct {
	dreams   repository.DreamRepo
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

func NewPortfolioService(dreams repository.DreamRepo, profiles repository.ProfileRepo, observers ...UseCaseObserver) PortfolioService {
	return &portfolioService{
		dreams:   dreams,
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Analyze walks every pair of active dreams looking for conflicts (windows
// overlap and the summed contributions exceed savings capacity) and
// synergies (shared category, or one dream finishing early enough to fund
// the other).
func (s *portfolioService) Analyze(ctx context.Context, req contract.AnalyzeRequest) (resp *contract.AnalyzeResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{}
		if resp != nil {
			fields["dreams"] = resp.DreamCount
			fields["findings"] = len(resp.Findings)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "analyze-portfolio",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	all, err := s.dreams.List(ctx, req.IncludeArchived)
	if err != nil {
		return nil, fmt.Errorf("listing dreams: %w", err)
	}
	var active []*domain.Dream
	for _, d := range all {
		if d.Status == domain.DreamActive {
			active = append(active, d)
		}
	}
	if len(active) == 0 {
		return nil, &contract.PortfolioError{
			Code:    contract.ErrNoActiveDreams,
			Message: "no active dreams to analyze",
		}
	}

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	resp = &contract.AnalyzeResponse{
		GeneratedAt:          now,
		DreamCount:           len(active),
		MonthlyCommitCents:   monthlyCommitCents(active),
		SavingsCapacityCents: profile.SavingsCapacityCents,
	}
	resp.OverCommitted = profile.SavingsCapacityCents > 0 && resp.MonthlyCommitCents > profile.SavingsCapacityCents
	if profile.SavingsCapacityCents == 0 {
		resp.Warnings = append(resp.Warnings, "no savings capacity set; conflict detection is limited")
	}

	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			a, b := active[i], active[j]
			pairIDs := [2]string{a.ID, b.ID}

			if profile.SavingsCapacityCents > 0 &&
				windowFor(a).overlaps(windowFor(b)) &&
				a.MonthlyContribCents+b.MonthlyContribCents > profile.SavingsCapacityCents {
				resp.Findings = append(resp.Findings, contract.Finding{
					Kind:     contract.FindingConflict,
					DreamIDs: pairIDs,
					Reason: fmt.Sprintf("%q and %q together need %s/month but capacity is %s/month",
						a.Title, b.Title,
						formatCents(a.MonthlyContribCents+b.MonthlyContribCents, profile.Currency),
						formatCents(profile.SavingsCapacityCents, profile.Currency)),
				})
				continue
			}

			if a.Category == b.Category {
				resp.Findings = append(resp.Findings, contract.Finding{
					Kind:     contract.FindingSynergy,
					DreamIDs: pairIDs,
					Reason:   fmt.Sprintf("%q and %q are both %s goals and could share a fund", a.Title, b.Title, a.Category),
				})
				continue
			}
			if fundsNext(a, b) {
				resp.Findings = append(resp.Findings, contract.Finding{
					Kind:     contract.FindingSynergy,
					DreamIDs: pairIDs,
					Reason:   fmt.Sprintf("%q finishes first; its contribution can roll into %q", a.Title, b.Title),
				})
			} else if fundsNext(b, a) {
				resp.Findings = append(resp.Findings, contract.Finding{
					Kind:     contract.FindingSynergy,
					DreamIDs: [2]string{b.ID, a.ID},
					Reason:   fmt.Sprintf("%q finishes first; its contribution can roll into %q", b.Title, a.Title),
				})
			}
		}
	}

	return resp, nil
}

func formatCents(cents int64, currency string) string {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return fmt.Sprintf("%d.%02d %s", cents/100, cents%100, currency)
}
