package domain

import "time"

// Invite lets one partner pull the other into a dream (kind=dream) or into
// the shared account itself (kind=partner). The code travels out of band.
type Invite struct {
	ID         string
	Code       string
	DreamID    string
	InviterID  string
	Kind       InviteKind
	Status     InviteStatus
	CreatedAt  time.Time
	AcceptedAt *time.Time
}

// Expired reports whether the invite is older than ttl and still pending.
func (i *Invite) Expired(now time.Time, ttl time.Duration) bool {
	return i.Status == InvitePending && now.Sub(i.CreatedAt) > ttl
}
