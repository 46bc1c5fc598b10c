package models

import "time"

// ActivityEntry is a single audit-trail record, e.g. "created_project".
type ActivityEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Action     string    `json:"action"`
	Metadata   any       `json:"metadata,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
