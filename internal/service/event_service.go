package service

import (
	"context"

	"github.com/spec-kit/schedule-manager/internal/activity"
	"github.com/spec-kit/schedule-manager/internal/auth"
	"github.com/spec-kit/schedule-manager/internal/domain"
	"github.com/spec-kit/schedule-manager/internal/repository"
)

// EventService exposes event operations to handlers. Results are the repository's,
// unchanged; successful writes are additionally published as activities.
type EventService struct {
	events     repository.EventRepository
	dispatcher activity.Dispatcher
}

// NewEventService constructs the service. dispatcher may be nil.
func NewEventService(events repository.EventRepository, dispatcher activity.Dispatcher) *EventService {
	return &EventService{events: events, dispatcher: dispatcher}
}

func (s *EventService) FindAll(ctx context.Context) ([]domain.Event, error) {
	return s.events.FindAll(ctx)
}

func (s *EventService) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.FindByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, event domain.NewEvent) (*domain.Event, error) {
	created, err := s.events.Create(ctx, event)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, activity.KindEventCreated, created.ID)
	return created, nil
}

func (s *EventService) Update(ctx context.Context, id string, patch domain.EventPatch) (bool, error) {
	updated, err := s.events.Update(ctx, id, patch)
	if err == nil && updated {
		s.publish(ctx, activity.KindEventUpdated, id)
	}
	return updated, err
}

func (s *EventService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.events.Delete(ctx, id)
	if err == nil && deleted {
		s.publish(ctx, activity.KindEventDeleted, id)
	}
	return deleted, err
}

func (s *EventService) publish(ctx context.Context, kind activity.Kind, eventID string) {
	if s.dispatcher == nil {
		return
	}
	var actor string
	if identity, ok := auth.IdentityFromContext(ctx); ok {
		actor = identity.SubjectID
	}
	s.dispatcher.Publish(ctx, activity.New(kind, actor, eventID))
}
