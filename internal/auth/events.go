package auth

import "sync"

// Event classifies the most recent authentication lifecycle occurrence.
type Event string

const (
	EventInitialSession Event = "INITIAL_SESSION"
	EventSignedIn       Event = "SIGNED_IN"
	EventSignedOut      Event = "SIGNED_OUT"
	EventTokenRefreshed Event = "TOKEN_REFRESHED"
	EventUserUpdated    Event = "USER_UPDATED"
)

// Inbox is a single-slot mailbox for auth events. Publish overwrites any
// unconsumed event (latest wins; the dropped event described a superseded
// session state), and Consume takes and clears the slot. The explicit
// consume operation is what lets the gate guarantee each event is acted on
// at most once even when its evaluation re-runs.
type Inbox struct {
	mu      sync.Mutex
	event   Event
	pending bool
}

func NewInbox() *Inbox {
	return &Inbox{}
}

// Publish places an event in the slot, replacing any unconsumed one.
func (i *Inbox) Publish(ev Event) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.event = ev
	i.pending = true
}

// Consume takes the pending event, clearing the slot.
func (i *Inbox) Consume() (Event, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.pending {
		return "", false
	}
	ev := i.event
	i.event = ""
	i.pending = false
	return ev, true
}

// Pending reports whether an event is waiting without consuming it.
func (i *Inbox) Pending() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.pending
}
