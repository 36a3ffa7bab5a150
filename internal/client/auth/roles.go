// Package auth resolves roles to backend endpoints and discovers the
// caller's role from an issued access token.
package auth

import (
	"errors"
	"fmt"

	"github.com/coachdesk/coachdesk/internal/client/models"
)

// ErrUnknownRole marks a role outside the enumerated set. It is raised
// before any request is sent; an unmapped role is a client-side validation
// failure, never a network error.
var ErrUnknownRole = errors.New("unknown role")

// Endpoints are the role-specific backend paths.
type Endpoints struct {
	ProfilePath string
	SignupPath  string
}

var roleEndpoints = map[models.Role]Endpoints{
	models.RoleTrainer:      {ProfilePath: "/api/trainers/profile", SignupPath: "/api/trainers/signup"},
	models.RoleNutritionist: {ProfilePath: "/api/nutritionists/profile", SignupPath: "/api/nutritionists/signup"},
	models.RoleTrainee:      {ProfilePath: "/api/users/profile", SignupPath: "/api/users/signup"},
	models.RoleAdmin:        {ProfilePath: "/api/users/profile", SignupPath: "/api/users/signup"},
}

// EndpointsFor returns the endpoint set for a role, or ErrUnknownRole when
// the role is not in the table.
func EndpointsFor(role models.Role) (Endpoints, error) {
	ep, ok := roleEndpoints[role]
	if !ok {
		return Endpoints{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	return ep, nil
}
