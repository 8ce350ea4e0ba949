// Package contract holds the request/response types shared between the
// service layer, the Luna assistant, and the CLI surfaces.
package contract

import "time"

type FindingKind string

const (
	FindingConflict FindingKind = "conflict"
	FindingSynergy  FindingKind = "synergy"
)

// Finding is one pairwise observation over the active dream portfolio.
type Finding struct {
	Kind     FindingKind
	DreamIDs [2]string
	Reason   string
}

type AnalyzeRequest struct {
	Now             *time.Time
	IncludeArchived bool
}

// AnalyzeResponse summarizes the portfolio: every pairwise finding plus the
// committed monthly contribution measured against the couple's capacity.
type AnalyzeResponse struct {
	GeneratedAt          time.Time
	DreamCount           int
	Findings             []Finding
	MonthlyCommitCents   int64
	SavingsCapacityCents int64
	OverCommitted        bool
	Warnings             []string
}

type PortfolioErrorCode string

const (
	ErrNoActiveDreams PortfolioErrorCode = "NO_ACTIVE_DREAMS"
	ErrNoProfile      PortfolioErrorCode = "NO_PROFILE"
)

type PortfolioError struct {
	Code    PortfolioErrorCode
	Message string
}

func (e *PortfolioError) Error() string {
	return string(e.Code) + ": " + e.Message
}
