package model

import "time"

const (
	EventCreatorCreated = "creator.created"
	EventCreatorUpdated = "creator.updated"
	EventCreatorDeleted = "creator.deleted"
)

type CreatorEvent struct {
	Type       string    `json:"type"`
	CreatorID  string    `json:"creator_id"`
	Creator    *Creator  `json:"creator,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
