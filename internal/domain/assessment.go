package domain

import (
	"fmt"
	"regexp"
	"time"
)

var joinCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// AssessmentSession is one run of the compatibility quiz. Partner A starts
// it and shares the join code; partner B joins with the code and answers the
// same questions. Scoring requires both sides to be complete.
type AssessmentSession struct {
	ID        string
	DreamID   string
	JoinCode  string
	Status    AssessmentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateJoinCode checks that the code is 6 uppercase letters or digits.
func ValidateJoinCode(code string) error {
	if !joinCodePattern.MatchString(code) {
		return fmt.Errorf("join code %q must be 6 uppercase letters or digits (e.g. AB12CD)", code)
	}
	return nil
}

// Answer is one partner's response to one quiz question, on a 1-5 scale.
type Answer struct {
	SessionID  string
	Partner    Partner
	QuestionID string
	Value      int
	CreatedAt  time.Time
}

// ValidateAnswer checks the answer value range and question identity.
func (a *Answer) Validate() error {
	if a.QuestionID == "" {
		return fmt.Errorf("answer is missing a question ID")
	}
	if a.Partner != PartnerA && a.Partner != PartnerB {
		return fmt.Errorf("unknown partner %q", a.Partner)
	}
	if a.Value < 1 || a.Value > 5 {
		return fmt.Errorf("answer value %d out of range 1-5", a.Value)
	}
	return nil
}
