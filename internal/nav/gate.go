package nav

import (
	"context"

	"github.com/togetherforward/forward/internal/auth"
)

// Local-storage keys read-then-deleted by the gate.
const (
	KeyPendingInviteCode        = "pending_invite_code"
	KeyPendingPartnerInviteCode = "pending_partner_invite_code"
)

// AuthState is the gate's read-only view of the auth collaborator.
type AuthState interface {
	Loading() bool
	CurrentUser() *auth.User
}

// DreamLister answers the gate's one data question: does this user have
// any goal collections yet.
type DreamLister interface {
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}

// GuestDreams manages content created before sign-up and staged locally.
type GuestDreams interface {
	HasValidGuestDream(ctx context.Context) bool
	AttachToAccount(ctx context.Context, ownerID string) (dreamID string, err error)
}

// KV is the gate's view of local persistent storage.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}

// GateDecision records one gate evaluation for observability.
type GateDecision struct {
	Event  auth.Event
	Branch string
	Stage  Stage
	Err    error
}

// GateObserver receives gate decisions for logging.
type GateObserver interface {
	OnGateDecision(GateDecision)
}

// NoopGateObserver discards all decisions.
type NoopGateObserver struct{}

func (NoopGateObserver) OnGateDecision(GateDecision) {}

// Gate classifies pending auth events and decides whether and where the
// session should be routed. It is evaluated whenever the auth state or the
// pending event changes, never on stage changes, which is what keeps an
// open panel alive across token refreshes.
type Gate struct {
	machine *Machine
	inbox   *auth.Inbox
	authSt  AuthState
	dreams  DreamLister
	guest   GuestDreams
	kv      KV
	notify  func(string)
	obs     GateObserver

	initialChecked bool
}

// GateDeps bundles the gate's collaborators. Notify and Observer are
// optional.
type GateDeps struct {
	Machine  *Machine
	Inbox    *auth.Inbox
	Auth     AuthState
	Dreams   DreamLister
	Guest    GuestDreams
	KV       KV
	Notify   func(string)
	Observer GateObserver
}

func NewGate(deps GateDeps) *Gate {
	g := &Gate{
		machine: deps.Machine,
		inbox:   deps.Inbox,
		authSt:  deps.Auth,
		dreams:  deps.Dreams,
		guest:   deps.Guest,
		kv:      deps.KV,
		notify:  deps.Notify,
		obs:     deps.Observer,
	}
	if g.notify == nil {
		g.notify = func(string) {}
	}
	if g.obs == nil {
		g.obs = NoopGateObserver{}
	}
	return g
}

// Evaluate runs the decision chain once. The chain is linear and first
// match wins. The pending event is consumed exactly once per evaluation:
// while auth is still loading nothing is consumed (the event stays queued
// for the next evaluation), after that the single Consume at the top clears
// the slot no matter which branch fires, so re-entry is idempotent.
func (g *Gate) Evaluate(ctx context.Context) {
	if g.authSt.Loading() {
		return
	}
	ev, ok := g.inbox.Consume()
	if !ok {
		return
	}

	// Token refreshes and profile updates must never disturb the UI.
	if ev == auth.EventTokenRefreshed || ev == auth.EventUserUpdated {
		g.decided(ev, "refresh-noop", nil)
		return
	}

	user := g.authSt.CurrentUser()
	path := g.machine.Path()

	// Special routes own their navigation; the route-sync reducer decides.
	if SpecialPath(path) {
		if code, ok := JoinCodeFromPath(path); ok {
			g.machine.setJoinCode(code)
			g.machine.forceStage(StageCompatibility)
		}
		g.decided(ev, "special-route", nil)
		return
	}

	if user != nil && g.redirectPendingInvite(ctx, ev, KeyPendingInviteCode, "/invite/") {
		return
	}
	if user != nil && g.redirectPendingInvite(ctx, ev, KeyPendingPartnerInviteCode, "/partner-invite/") {
		return
	}

	if user != nil && g.guest != nil && g.guest.HasValidGuestDream(ctx) {
		dreamID, err := g.guest.AttachToAccount(ctx, user.ID)
		if err == nil {
			g.machine.OpenDream(dreamID, "")
			g.notify("Your dream has been saved to your account.")
			g.decided(ev, "guest-attached", nil)
			return
		}
		// Attachment failure keeps the staging for a later retry and
		// falls through to the normal flow.
		g.decided(ev, "guest-attach-failed", err)
	}

	if ev == auth.EventSignedOut || user == nil {
		if g.machine.Stage() != StagePricing {
			g.machine.SetStage(StageLanding)
		}
		g.decided(ev, "signed-out", nil)
		return
	}

	if g.initialChecked && g.machine.Stage() != StageLoading && g.machine.Stage() != StageLanding {
		g.decided(ev, "mid-flow", nil)
		return
	}

	// First meaningful check for a signed-in user.
	count, err := g.dreams.CountByOwner(ctx, user.ID)
	if err != nil {
		count = 0
	}
	if count > 0 {
		g.machine.SetStage(StageDashboard)
	} else {
		g.machine.SetStage(StageLanding)
	}
	g.initialChecked = true
	g.decided(ev, "initial-check", err)
}

// redirectPendingInvite consumes a pending invite code from local storage
// and performs a full redirect to its acceptance path, bypassing the stage
// machine. Returns true when a redirect happened.
func (g *Gate) redirectPendingInvite(ctx context.Context, ev auth.Event, key, prefix string) bool {
	if g.kv == nil {
		return false
	}
	code, ok, err := g.kv.Get(ctx, key)
	if err != nil || !ok || code == "" {
		return false
	}
	_ = g.kv.Delete(ctx, key)
	g.machine.nav.Assign(prefix + code)
	g.machine.SyncFromPath()
	g.decided(ev, "pending-invite", nil)
	return true
}

func (g *Gate) decided(ev auth.Event, branch string, err error) {
	g.obs.OnGateDecision(GateDecision{
		Event:  ev,
		Branch: branch,
		Stage:  g.machine.Stage(),
		Err:    err,
	})
}
