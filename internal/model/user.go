package model

// Role identifies what a user is allowed to do. Roles are assigned by the
// scheduling backend and never change from this side.
type Role string

const (
	// RoleStudent can view the combined calendar and notifications.
	RoleStudent Role = "student"
	// RoleTeacher can additionally create tasks and events.
	RoleTeacher Role = "teacher"
)

// User represents an authenticated user as returned by the scheduling backend.
// Immutable from this service's perspective.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsTeacher reports whether the user may create tasks and events.
func (u User) IsTeacher() bool {
	return u.Role == RoleTeacher
}
