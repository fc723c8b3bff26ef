package accounts

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Username, Password, Age and CreatedAt are
// fixed at registration; only the active flag changes afterwards.
type User struct {
	ID            uuid.UUID  `json:"id"`
	Username      string     `json:"username"`
	Password      string     `json:"-"`
	Age           int        `json:"age"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
}

// IsActive reports whether the account is enabled
func (u *User) IsActive() bool {
	return u != nil && u.Active
}

// deactivate clears the active flag and reports whether anything changed
func (u *User) deactivate(at time.Time) bool {
	if !u.Active {
		return false
	}
	u.Active = false
	u.DeactivatedAt = &at
	return true
}

func (u *User) clone() User {
	out := *u
	if u.DeactivatedAt != nil {
		at := *u.DeactivatedAt
		out.DeactivatedAt = &at
	}
	return out
}
