package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/schedule-manager/internal/api/dto"
	"github.com/spec-kit/schedule-manager/internal/domain"
	apperrors "github.com/spec-kit/schedule-manager/pkg/util"
)

// EventService is what the event endpoints need from the service layer.
type EventService interface {
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	Create(ctx context.Context, event domain.NewEvent) (*domain.Event, error)
	Update(ctx context.Context, id string, patch domain.EventPatch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// EventsHandler manages event endpoints. All of them sit behind the auth middleware.
type EventsHandler struct {
	events EventService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(events EventService) *EventsHandler {
	return &EventsHandler{events: events}
}

// List GET /event.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	events, err := h.events.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"events": dto.NewEventResponses(events)}})
}

// Get GET /event/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	event, err := h.events.FindByID(c.UserContext(), id)
	if err != nil {
		return notFoundOr(err, id)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"event": dto.NewEventResponse(event)}})
}

// Create POST /event.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" {
		return apperrors.NewValidationError("title required", map[string]any{"field": "title"})
	}

	event, err := h.events.Create(c.UserContext(), domain.NewEvent{Title: req.Title, Description: req.Description})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"event": dto.NewEventResponse(event)}})
}

// Update PATCH /event/:id.
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	patch := req.Patch()
	if patch.Empty() {
		return apperrors.NewBadRequest("title or description required")
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return apperrors.NewValidationError("title must not be blank", map[string]any{"field": "title"})
	}

	modified, err := h.events.Update(c.UserContext(), id, patch)
	if err != nil {
		return err
	}

	// An unmodified event still has to exist.
	event, err := h.events.FindByID(c.UserContext(), id)
	if err != nil {
		return notFoundOr(err, id)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"event":    dto.NewEventResponse(event),
		"modified": modified,
	}})
}

// Delete DELETE /event/:id.
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted, err := h.events.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("event", map[string]any{"id": id})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}

func notFoundOr(err error, id string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperrors.NewNotFound("event", map[string]any{"id": id})
	}
	return err
}
