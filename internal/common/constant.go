// Package common contains shared constants and sentinel errors used across
// CoachDesk components.
package common

// AuthHeaderName is the HTTP header used to carry the access token on
// outbound requests.
const AuthHeaderName = "Authorization"

// BearerPrefix is prepended to the token in AuthHeaderName.
const BearerPrefix = "Bearer "
