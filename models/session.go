package models

import "time"

// SessionStatus is the lifecycle state of the client session.
type SessionStatus int

const (
	// StatusRestoring is the state between process start and the end of Restore.
	StatusRestoring SessionStatus = iota
	StatusUnauthenticated
	StatusAuthenticated
)

func (s SessionStatus) String() string {
	switch s {
	case StatusRestoring:
		return "restoring"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is a read-only snapshot of who is logged in.
// Identity and Credential are either both set or both empty.
type Session struct {
	Identity   *User
	Credential string
	Status     SessionStatus

	// ExpiresAt is read from the credential's exp claim when it has one.
	// It is informational only and never used to reject a session.
	ExpiresAt time.Time
}

// IsAuthenticated reports whether an identity is present.
func (s Session) IsAuthenticated() bool {
	return s.Identity != nil
}

// LoginResult is what a login attempt reports to the views. It never carries
// a Go error: failures are already turned into a readable reason.
type LoginResult struct {
	Success bool
	Error   string
}
