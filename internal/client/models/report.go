package models

import "time"

// ReportKind partitions moderation reports by the kind of entity reported.
// Each kind is loaded and actioned independently.
type ReportKind string

const (
	ReportUsers       ReportKind = "users"
	ReportPosts       ReportKind = "posts"
	ReportComments    ReportKind = "comments"
	ReportCommunities ReportKind = "communities"
)

// ReportKinds lists every kind in a stable order.
var ReportKinds = []ReportKind{ReportUsers, ReportPosts, ReportComments, ReportCommunities}

// Valid reports whether k is one of the enumerated kinds.
func (k ReportKind) Valid() bool {
	switch k {
	case ReportUsers, ReportPosts, ReportComments, ReportCommunities:
		return true
	}
	return false
}

// ReportStatus is the moderation disposition of a report.
type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportDismissed ReportStatus = "dismissed"
)

// ReportRecord is one user-submitted flag awaiting admin disposition.
type ReportRecord struct {
	ID         string       `json:"id"`
	EntityID   string       `json:"entityId"`
	EntityKind ReportKind   `json:"entityKind"`
	Reason     string       `json:"reason"`
	ReporterID string       `json:"reporterId"`
	CreatedAt  time.Time    `json:"createdAt"`
	Status     ReportStatus `json:"status"`
}
