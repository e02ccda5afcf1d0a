package domain

import "time"

// Event is a titled schedule entry. Events are not owned by a user.
type Event struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewEvent holds the fields accepted on creation.
type NewEvent struct {
	Title       string
	Description string
}

// EventPatch is a partial update. Nil fields are left untouched; the identifier is not patchable.
type EventPatch struct {
	Title       *string
	Description *string
}

// Empty reports whether the patch touches no field.
func (p EventPatch) Empty() bool {
	return p.Title == nil && p.Description == nil
}
