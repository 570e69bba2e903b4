package domain

import "time"

// Role classifies an account. The set is closed; anything else coming
// from a request or the store is rejected at the boundary.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFaculty, RoleStudent:
		return true
	}
	return false
}

// User is the identity record for every account: students, faculty and admins.
type User struct {
	ID             string
	Email          string
	FullName       string
	HashedPassword string
	Role           Role
	Department     *string
	RollNumber     *string
	IsActive       bool
	CreatedAt      time.Time
}
