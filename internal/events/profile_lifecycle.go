package events

import "time"

const ProfileLifecycleTopic = "wedding.profile.lifecycle.v1"

const (
	ProfilePublished   = "profile_published"
	ProfileUnpublished = "profile_unpublished"
)

// ProfileLifecycleEvent is keyed by profile id on the topic.
type ProfileLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	ProfileID  string    `json:"profile_id"`
	TenantID   string    `json:"tenant_id"`
	Slug       string    `json:"slug"`
	OccurredAt time.Time `json:"occurred_at"`
}
