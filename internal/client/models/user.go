// Package models defines the domain types exchanged between the CoachDesk
// client stores and the backend API.
package models

import "time"

// Role classifies a platform account.
type Role string

const (
	RoleTrainer      Role = "trainer"
	RoleNutritionist Role = "nutritionist"
	RoleTrainee      Role = "trainee"
	RoleAdmin        Role = "admin"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleTrainer, RoleNutritionist, RoleTrainee, RoleAdmin:
		return true
	}
	return false
}

// User is a platform account as returned by the backend.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

// SignupData carries the fields a new account is created with.
type SignupData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the normalized outcome of a login or signup call. Either
// field may be zero when the backend response omitted it; callers must check
// both before treating the session as authenticated.
type AuthResult struct {
	User  *User
	Token string
}

// UserQuery parameterizes a user-list fetch. Filtering and search are inputs
// to the fetch, not stored state; changing either restarts at page 1.
type UserQuery struct {
	Page   int
	Role   Role
	Search string
}
