// Package nav owns screen navigation: the stage enum, the path↔stage route
// table, the in-process history, and the auth-event gate that decides where
// a session lands. Stage is process-local UI state: it is reconstructed
// from the current path on startup and never persisted.
package nav

// Stage names the screen currently active. Exactly one stage is active at
// a time.
type Stage string

const (
	StageLoading           Stage = "loading"
	StageLanding           Stage = "landing"
	StageDashboard         Stage = "dashboard"
	StageProfile           Stage = "profile"
	StageSettings          Stage = "settings"
	StageGoalBuilder       Stage = "goalBuilder"
	StageCompatibility     Stage = "compatibility"
	StageResults           Stage = "results"
	StageTransition        Stage = "transition"
	StageMain              Stage = "main"
	StageMilestoneDetail   Stage = "milestoneDetail"
	StageDeepDive          Stage = "deepDive"
	StageAssessment        Stage = "assessment"
	StagePortfolioOverview Stage = "portfolioOverview"
	StageLunaOptimization  Stage = "lunaOptimization"
	StageRoadmapProfile    Stage = "roadmapProfile"
	StageAuthTest          Stage = "authTest"
	StagePricing           Stage = "pricing"
	StageInvite            Stage = "invite"
	StagePartnerInvite     Stage = "partnerInvite"
)

// Milestone-detail sections. Overview is the default and is omitted from
// the path when building URLs.
const (
	SectionOverview   = "overview"
	SectionRoadmap    = "roadmap"
	SectionBudget     = "budget"
	SectionAssessment = "assessment"
	SectionTasks      = "tasks"
)

// ValidSections is the set of named milestone-detail sections.
var ValidSections = map[string]bool{
	SectionOverview: true, SectionRoadmap: true, SectionBudget: true,
	SectionAssessment: true, SectionTasks: true,
}

// sectionDeepDive is the legacy path segment that resolves to StageDeepDive
// instead of a milestone-detail section.
const sectionDeepDive = "deep-dive"
