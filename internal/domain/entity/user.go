package entity

import "time"

// Role represents a user's permission level.
type Role string

// User roles, from most to least privileged.
const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleAuthor Role = "author"
)

// ValidRoles contains all valid user roles.
var ValidRoles = []Role{RoleAdmin, RoleEditor, RoleAuthor}

// IsValidRole checks if a role is valid.
func IsValidRole(r Role) bool {
	for _, v := range ValidRoles {
		if v == r {
			return true
		}
	}
	return false
}

// User represents an account that can author and manage articles.
// PasswordHash is a bcrypt hash and is opaque to the domain layer.
type User struct {
	ID            int64
	Name          string
	Email         string
	PasswordHash  string
	Role          Role
	IsActive      bool
	EmailVerified bool
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
