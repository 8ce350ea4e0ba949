package nav

import (
	"regexp"
	"strings"
)

// RootPath is the landing path and the target of unknown-route redirects.
const RootPath = "/"

// pathToStage is the exact-match half of the route table. Dynamic routes
// (dream detail, assessment join, roadmap, invites) are handled by the
// regex patterns below.
var pathToStage = map[string]Stage{
	RootPath:                 StageLanding,
	"/dashboard":             StageDashboard,
	"/profile":               StageProfile,
	"/settings":              StageSettings,
	"/create":                StageGoalBuilder,
	"/assessment":            StageCompatibility,
	"/assessment/results":    StageResults,
	"/assessment/transition": StageTransition,
	"/journey":               StageMain,
	"/luna-assessment":       StageAssessment,
	"/portfolio":             StagePortfolioOverview,
	"/optimize":              StageLunaOptimization,
	"/auth-test":             StageAuthTest,
	"/pricing":               StagePricing,
}

// stageToPath is the inverse literal table, used by PathFor.
var stageToPath = func() map[Stage]string {
	m := make(map[Stage]string, len(pathToStage))
	for path, stage := range pathToStage {
		m[stage] = path
	}
	return m
}()

// Dynamic route patterns, tested in this order; first match wins.
var (
	dreamPattern         = regexp.MustCompile(`^/dream/([^/]+)(?:/([^/]+))?$`)
	joinPattern          = regexp.MustCompile(`^/assessment/join/([^/]+)$`)
	roadmapPattern       = regexp.MustCompile(`^/roadmap/([^/]+)$`)
	invitePattern        = regexp.MustCompile(`^/invite/([^/]+)$`)
	partnerInvitePattern = regexp.MustCompile(`^/partner-invite/([^/]+)$`)
)

// resetPasswordPath is special-cased entirely outside the stage machine.
const resetPasswordPath = "/reset-password"

// Resolution is the outcome of resolving a path. Matched is false when no
// pattern recognizes the path; callers then decide whether to redirect.
type Resolution struct {
	Stage      Stage
	DreamID    string
	Section    string
	JoinCode   string
	RoadmapID  string
	InviteCode string
	Matched    bool
}

// ResolveStage maps a path to its stage: exact table first, then the
// dynamic patterns in fixed order.
func ResolveStage(path string) Resolution {
	if stage, ok := pathToStage[path]; ok {
		return Resolution{Stage: stage, Matched: true}
	}

	if m := dreamPattern.FindStringSubmatch(path); m != nil {
		dreamID, section := m[1], m[2]
		if section == sectionDeepDive {
			return Resolution{Stage: StageDeepDive, DreamID: dreamID, Matched: true}
		}
		if section == "" {
			section = SectionOverview
		}
		return Resolution{Stage: StageMilestoneDetail, DreamID: dreamID, Section: section, Matched: true}
	}

	if m := joinPattern.FindStringSubmatch(path); m != nil {
		return Resolution{Stage: StageCompatibility, JoinCode: m[1], Matched: true}
	}

	if m := roadmapPattern.FindStringSubmatch(path); m != nil {
		return Resolution{Stage: StageRoadmapProfile, RoadmapID: m[1], Matched: true}
	}

	if m := invitePattern.FindStringSubmatch(path); m != nil {
		return Resolution{Stage: StageInvite, InviteCode: m[1], Matched: true}
	}

	if m := partnerInvitePattern.FindStringSubmatch(path); m != nil {
		return Resolution{Stage: StagePartnerInvite, InviteCode: m[1], Matched: true}
	}

	return Resolution{}
}

// Params carries the ambient route state needed to build dynamic paths.
type Params struct {
	DreamID   string
	Section   string
	RoadmapID string
}

// PathFor maps a stage back to a path. The three dynamic stages build their
// path from params; everything else uses the literal table, defaulting to
// root. The overview section is omitted so /dream/{id} round-trips cleanly.
func PathFor(stage Stage, p Params) string {
	switch stage {
	case StageMilestoneDetail:
		if p.Section == "" || p.Section == SectionOverview {
			return "/dream/" + p.DreamID
		}
		return "/dream/" + p.DreamID + "/" + p.Section
	case StageDeepDive:
		return "/dream/" + p.DreamID + "/" + sectionDeepDive
	case StageRoadmapProfile:
		return "/roadmap/" + p.RoadmapID
	}
	if path, ok := stageToPath[stage]; ok {
		return path
	}
	return RootPath
}

// SpecialPath reports whether the path belongs to a flow the gate must not
// redirect away from: invite acceptance, partner-invite acceptance,
// assessment join, and password reset.
func SpecialPath(path string) bool {
	return strings.HasPrefix(path, "/invite/") ||
		strings.HasPrefix(path, "/partner-invite/") ||
		strings.HasPrefix(path, "/assessment/join/") ||
		path == resetPasswordPath
}

// JoinCodeFromPath extracts the join code from an assessment-join path.
func JoinCodeFromPath(path string) (string, bool) {
	if m := joinPattern.FindStringSubmatch(path); m != nil {
		return m[1], true
	}
	return "", false
}

// LiteralPaths returns a copy of the exact-match half of the table,
// for diagnostics and tests.
func LiteralPaths() map[string]Stage {
	m := make(map[string]Stage, len(pathToStage))
	for k, v := range pathToStage {
		m[k] = v
	}
	return m
}
