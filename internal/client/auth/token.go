package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/coachdesk/coachdesk/internal/client/models"
	"github.com/coachdesk/coachdesk/internal/common"
)

// roleClaims carries the single custom claim the client cares about.
type roleClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// DecodeRole extracts the role claim from an access token without verifying
// the signature. The client holds no signing secret; the token is only
// trusted as far as picking the profile endpoint, and the server re-checks
// it on every request. Malformed tokens and unknown roles are typed errors,
// never panics.
func DecodeRole(token string) (models.Role, error) {
	claims := &roleClaims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	role := models.Role(claims.Role)
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, claims.Role)
	}
	return role, nil
}
