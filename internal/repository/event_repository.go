package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/schedule-manager/internal/domain"
)

// EventRepository manages event persistence. Each method is a single statement.
type EventRepository interface {
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	Create(ctx context.Context, event domain.NewEvent) (*domain.Event, error)
	// Update reports whether a row was modified. A patch that matches an event but
	// changes none of its values reports false, as does an unknown id.
	Update(ctx context.Context, id string, patch domain.EventPatch) (bool, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

type eventRepository struct {
	db Querier
}

// NewEventRepository builds the repository.
func NewEventRepository(db Querier) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	const query = `
        SELECT id, title, description, created_at, updated_at
        FROM events ORDER BY created_at, id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, domain.NewDatabaseError(domain.DatabaseErrorGeneric, "Failed to list events", err)
	}
	defer rows.Close()

	result := make([]domain.Event, 0)
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(&event.ID, &event.Title, &event.Description, &event.CreatedAt, &event.UpdatedAt); err != nil {
			return nil, domain.NewDatabaseError(domain.DatabaseErrorGeneric, "Failed to list events", err)
		}
		result = append(result, event)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewDatabaseError(domain.DatabaseErrorGeneric, "Failed to list events", err)
	}
	return result, nil
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}

	const query = `
        SELECT id, title, description, created_at, updated_at
        FROM events WHERE id=$1`
	var event domain.Event
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewDatabaseError(domain.DatabaseErrorGeneric, "Failed to find event", err)
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, newEvent domain.NewEvent) (*domain.Event, error) {
	const query = `
        INSERT INTO events (title, description)
        VALUES ($1, $2)
        RETURNING id, title, description, created_at, updated_at`
	var event domain.Event
	if err := r.db.QueryRow(ctx, query,
		newEvent.Title,
		newEvent.Description,
	).Scan(&event.ID, &event.Title, &event.Description, &event.CreatedAt, &event.UpdatedAt); err != nil {
		return nil, classifyWriteError(err, "An event with these values already exists.", "Failed to save event")
	}
	return &event, nil
}

func (r *eventRepository) Update(ctx context.Context, id string, patch domain.EventPatch) (bool, error) {
	if !validID(id) || patch.Empty() {
		return false, nil
	}

	// Rows whose supplied fields already hold the requested values are not matched,
	// so RowsAffected counts modifications rather than matches.
	const query = `
        UPDATE events SET
            title = COALESCE($2::text, title),
            description = COALESCE($3::text, description),
            updated_at = NOW()
        WHERE id=$1
          AND (($2::text IS NOT NULL AND title IS DISTINCT FROM $2::text)
            OR ($3::text IS NOT NULL AND description IS DISTINCT FROM $3::text))`
	cmd, err := r.db.Exec(ctx, query, id, patch.Title, patch.Description)
	if err != nil {
		return false, classifyWriteError(err, "An event with these values already exists.", "Failed to update event")
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}

	const query = `DELETE FROM events WHERE id=$1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, domain.NewDatabaseError(domain.DatabaseErrorGeneric, "Failed to delete event", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// validID reports whether id can name a stored row. Anything else can never match.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
