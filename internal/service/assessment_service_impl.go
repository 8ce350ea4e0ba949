package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/repository"
)

// joinCodeAlphabet omits easily confused characters (0/O, 1/I).
const joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type assessmentService struct {
	assessments repository.AssessmentRepo
	observer    UseCaseObserver
}

func NewAssessmentService(assessments repository.AssessmentRepo, observers ...UseCaseObserver) AssessmentService {
	return &assessmentService{
		assessments: assessments,
		observer:    useCaseObserverOrNoop(observers),
	}
}

// Start opens a new quiz session for partner A and mints its join code.
func (s *assessmentService) Start(ctx context.Context, dreamID string) (*domain.AssessmentSession, error) {
	code, err := newJoinCode()
	if err != nil {
		return nil, fmt.Errorf("generating join code: %w", err)
	}
	now := time.Now().UTC()
	session := &domain.AssessmentSession{
		ID:        uuid.New().String(),
		DreamID:   dreamID,
		JoinCode:  code,
		Status:    domain.AssessmentOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.assessments.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Join looks up an open session by its code and marks partner B present.
func (s *assessmentService) Join(ctx context.Context, joinCode string) (*domain.AssessmentSession, error) {
	code := strings.ToUpper(strings.TrimSpace(joinCode))
	if err := domain.ValidateJoinCode(code); err != nil {
		return nil, err
	}
	session, err := s.assessments.GetSessionByJoinCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("no session with code %s: %w", code, err)
	}
	if session.Status == domain.AssessmentOpen {
		session.Status = domain.AssessmentPartnerJoined
		session.UpdatedAt = time.Now().UTC()
		if err := s.assessments.UpdateSession(ctx, session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func (s *assessmentService) RecordAnswer(ctx context.Context, sessionID string, partner domain.Partner, questionID string, value int) error {
	a := &domain.Answer{
		SessionID:  sessionID,
		Partner:    partner,
		QuestionID: questionID,
		Value:      value,
		CreatedAt:  time.Now().UTC(),
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if !knownQuestion(questionID) {
		return fmt.Errorf("unknown question %q", questionID)
	}
	if _, err := s.assessments.GetSession(ctx, sessionID); err != nil {
		return fmt.Errorf("looking up session: %w", err)
	}
	return s.assessments.UpsertAnswer(ctx, a)
}

// Score computes the compatibility result once both partners have answered
// every question, and marks the session scored.
func (s *assessmentService) Score(ctx context.Context, sessionID string) (result *domain.CompatibilityResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "score-assessment",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"session": sessionID},
		})
	}()

	session, err := s.assessments.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	a, err := s.answerMap(ctx, sessionID, domain.PartnerA)
	if err != nil {
		return nil, err
	}
	b, err := s.answerMap(ctx, sessionID, domain.PartnerB)
	if err != nil {
		return nil, err
	}

	result, err = domain.ScoreCompatibility(a, b)
	if err != nil {
		return nil, err
	}

	session.Status = domain.AssessmentScored
	session.UpdatedAt = time.Now().UTC()
	if err := s.assessments.UpdateSession(ctx, session); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *assessmentService) answerMap(ctx context.Context, sessionID string, partner domain.Partner) (map[string]int, error) {
	answers, err := s.assessments.ListAnswers(ctx, sessionID, partner)
	if err != nil {
		return nil, err
	}
	m := make(map[string]int, len(answers))
	for _, a := range answers {
		m[a.QuestionID] = a.Value
	}
	return m, nil
}

func knownQuestion(id string) bool {
	for _, q := range domain.QuizQuestions {
		if q.ID == id {
			return true
		}
	}
	return false
}

func newJoinCode() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, b := range buf {
		sb.WriteByte(joinCodeAlphabet[int(b)%len(joinCodeAlphabet)])
	}
	return sb.String(), nil
}
