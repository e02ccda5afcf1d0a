package dto

import (
	"time"

	"github.com/spec-kit/schedule-manager/internal/domain"
)

// CreateEventRequest payload for new events.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateEventRequest carries a partial update; absent fields stay nil.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Patch converts the request into a domain patch.
func (r UpdateEventRequest) Patch() domain.EventPatch {
	return domain.EventPatch{Title: r.Title, Description: r.Description}
}

// EventResponse is the public shape of an event.
type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func NewEventResponses(events []domain.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, NewEventResponse(&events[i]))
	}
	return out
}
