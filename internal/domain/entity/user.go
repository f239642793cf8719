package entity

import "time"

// Role is the capability tag attached to a user account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether the role is one of the known capability tags.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the aggregate root for the users module.
// Password holds a bcrypt hash and must never be logged or serialized
// in API responses.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
