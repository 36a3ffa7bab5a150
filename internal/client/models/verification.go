package models

import "time"

// VerificationStatus is the server-side state of a credential review.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Terminal reports whether s ends the review (verified or rejected).
func (s VerificationStatus) Terminal() bool {
	return s == VerificationVerified || s == VerificationRejected
}

// Document is a credential file submitted for review.
type Document struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// VerificationRecord is one entry in the pending-verification queue. The
// client never transitions Status locally; after a successful status-change
// request the queue is re-fetched and the server decides membership.
type VerificationRecord struct {
	UserID          string             `json:"userId"`
	Profile         User               `json:"profile"`
	Documents       []Document         `json:"documents"`
	Status          VerificationStatus `json:"status"`
	RejectionReason string             `json:"rejectionReason,omitempty"`
}

// Note is an admin remark attached to a user under review. Append-only from
// the client's perspective.
type Note struct {
	ID        string    `json:"id"`
	Note      string    `json:"note"`
	AddedBy   string    `json:"addedBy"`
	CreatedAt time.Time `json:"createdAt"`
}
