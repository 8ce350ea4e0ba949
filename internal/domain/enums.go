package domain

type DreamCategory string

const (
	CategoryWedding DreamCategory = "wedding"
	CategoryHome    DreamCategory = "home"
	CategoryTravel  DreamCategory = "travel"
	CategoryFinance DreamCategory = "finance"
	CategoryFamily  DreamCategory = "family"
	CategoryCustom  DreamCategory = "custom"
)

// ValidDreamCategories is the canonical set of accepted dream category strings.
var ValidDreamCategories = map[string]bool{
	"wedding": true, "home": true, "travel": true,
	"finance": true, "family": true, "custom": true,
}

type DreamStatus string

const (
	DreamDraft    DreamStatus = "draft"
	DreamActive   DreamStatus = "active"
	DreamPaused   DreamStatus = "paused"
	DreamAchieved DreamStatus = "achieved"
	DreamArchived DreamStatus = "archived"
)

type MilestoneStatus string

const (
	MilestoneUpcoming   MilestoneStatus = "upcoming"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneDone       MilestoneStatus = "done"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

type TaskAssignee string

const (
	AssigneeMe      TaskAssignee = "me"
	AssigneePartner TaskAssignee = "partner"
	AssigneeBoth    TaskAssignee = "both"
)

type AssessmentStatus string

const (
	AssessmentOpen          AssessmentStatus = "open"
	AssessmentPartnerJoined AssessmentStatus = "partner_joined"
	AssessmentScored        AssessmentStatus = "scored"
)

// Partner identifies which half of the couple produced an answer.
type Partner string

const (
	PartnerA Partner = "a"
	PartnerB Partner = "b"
)

type InviteKind string

const (
	InviteDream   InviteKind = "dream"
	InvitePartner InviteKind = "partner"
)

type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteExpired  InviteStatus = "expired"
)
