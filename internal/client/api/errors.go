package api

import (
	"errors"
	"fmt"

	"github.com/coachdesk/coachdesk/internal/common"
)

// ErrNoBaseURL is returned by every request when the backend base URL was
// never configured. Construction itself never fails on a missing URL.
var ErrNoBaseURL = errors.New("backend base URL is not configured")

// fallbackMessage is used when the server supplies no usable error body.
const fallbackMessage = "request failed"

// Error is a non-2xx backend response. Message is the server-supplied text
// when present, else a fixed fallback, so it can be surfaced verbatim in the
// operation's error field.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// Unwrap maps well-known status classes onto shared sentinels so callers can
// use errors.Is without inspecting status codes.
func (e *Error) Unwrap() error {
	switch {
	case e.Status == 401 || e.Status == 403:
		return common.ErrUnauthorized
	case e.Status >= 500:
		return common.ErrUnavailable
	}
	return nil
}
