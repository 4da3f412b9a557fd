package session

import (
	"time"

	"github.com/helpdeskhq/helpdesk-go/pkg/helpdesk"
)

// State is the manager's answer to "is there a logged-in user".
// StateRestoring exists so callers can tell "we don't know yet" apart from
// "definitely logged out" while a persisted token is still being validated.
type State int

const (
	StateRestoring State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is the client's belief about the current login: the bearer token,
// when it stops being valid (zero means non-expiring), and the last-known
// identity. The cached User may be stale relative to the server until the
// background verification lands.
//
// Invariant: no token means no user. Sessions are replaced wholesale by
// login, register and logout; only the cached User is refreshed in place
// during restoration.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *helpdesk.User
}

// IsAuthenticated reports whether a token is held. Token presence is the
// logical session.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}
