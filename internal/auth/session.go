package auth

import "time"

// Role identifies which code a session was created from.
type Role string

const (
	RoleHost  Role = "host"
	RoleGuest Role = "guest"
)

// DefaultSessionTTL is measured from creation; there is no sliding expiration.
const DefaultSessionTTL = time.Hour

// SessionCookieName carries the opaque session identifier. The cookie holds
// nothing but the identifier itself.
const SessionCookieName = "gw_session"

// Session binds a browser to an event with a role. Sessions live in process
// memory only; a restart invalidates all of them, which is acceptable for
// this scope.
type Session struct {
	ID        string    `json:"id"`
	EventID   uint      `json:"eventId"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
