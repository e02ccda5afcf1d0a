package activity

import (
	"time"

	"github.com/google/uuid"
)

// Kind enumerates recorded state changes.
type Kind string

const (
	KindUserRegistered Kind = "user_registered"
	KindEventCreated   Kind = "event_created"
	KindEventUpdated   Kind = "event_updated"
	KindEventDeleted   Kind = "event_deleted"
)

// Activity is one successful state change.
type Activity struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	ActorID    string    `json:"actor_id,omitempty"`
	ResourceID string    `json:"resource_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// New stamps an activity with an id and the current time.
func New(kind Kind, actorID, resourceID string) Activity {
	return Activity{
		ID:         uuid.NewString(),
		Kind:       kind,
		ActorID:    actorID,
		ResourceID: resourceID,
		Timestamp:  time.Now().UTC(),
	}
}
