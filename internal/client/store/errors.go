package store

import "errors"

// Validation sentinels. These are raised before any request is sent and are
// never retried automatically.
var (
	ErrNoToken           = errors.New("no token present")
	ErrMissingResetToken = errors.New("missing reset token")
	ErrMalformedResponse = errors.New("malformed server response")
	ErrReasonRequired    = errors.New("rejection reason is required")
	ErrInvalidTransition = errors.New("invalid verification status transition")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidReportKind = errors.New("invalid report kind")
	ErrEmptyNote         = errors.New("note text is empty")
)
