package entity

import "time"

// SessionRole identifies which actor class authenticated.
type SessionRole string

const (
	RolePilgrim SessionRole = "pilgrim"
	RoleAdmin   SessionRole = "admin"
)

// Session is the immutable record held by the presentation layer after a
// successful login. Gateways never read it; callers take author ids from it.
type Session struct {
	Role     SessionRole `json:"role"`
	ID       int64       `json:"id"`
	IssuedAt time.Time   `json:"issued_at"`
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// AdminID returns the admin id for admin sessions.
func (s Session) AdminID() (int64, bool) {
	if s.Role != RoleAdmin {
		return 0, false
	}
	return s.ID, true
}

// PilgrimID returns the pilgrim id for pilgrim sessions.
func (s Session) PilgrimID() (int64, bool) {
	if s.Role != RolePilgrim {
		return 0, false
	}
	return s.ID, true
}
