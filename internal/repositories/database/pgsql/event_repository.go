package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daybookhq/daybook-backend/internal/apperrors"
	"github.com/daybookhq/daybook-backend/internal/core/domain"
	portsrepo "github.com/daybookhq/daybook-backend/internal/core/ports/repositories"
	"github.com/daybookhq/daybook-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEventRepository struct {
	db *pgxpool.Pool
}

func newPgxEventRepository(db *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{db: db}
}

// Ensure PgxEventRepository implements portsrepo.EventRepositoryFacade
var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

// Helper to convert domain.Event to models.Event
func toModelEvent(d domain.Event) models.Event {
	return models.Event{
		EventID:      d.EventID,
		UserID:       d.UserID,
		Title:        d.Title,
		Description:  d.Description,
		EventDate:    d.EventDate,
		EventTime:    d.EventTime,
		Venue:        d.Venue,
		Requirements: d.Requirements,
		Notes:        d.Notes,
		Priority:     models.EventPriority(d.Priority),
		Status:       models.EventStatus(d.Status),
		Attachments:  d.Attachments,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Event to domain.Event. Rejects rows whose enum
// columns hold values outside the closed status/priority sets.
func toDomainEvent(m models.Event) (domain.Event, error) {
	status := domain.EventStatus(m.Status)
	if !status.IsValid() {
		return domain.Event{}, fmt.Errorf("event %s has invalid status %q", m.EventID, m.Status)
	}
	priority := domain.EventPriority(m.Priority)
	if !priority.IsValid() {
		return domain.Event{}, fmt.Errorf("event %s has invalid priority %q", m.EventID, m.Priority)
	}
	return domain.Event{
		EventID:      m.EventID,
		UserID:       m.UserID,
		Title:        m.Title,
		Description:  m.Description,
		EventDate:    m.EventDate,
		EventTime:    m.EventTime,
		Venue:        m.Venue,
		Requirements: m.Requirements,
		Notes:        m.Notes,
		Priority:     priority,
		Status:       status,
		Attachments:  m.Attachments,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}

const eventColumns = `event_id, user_id, title, description, event_date, event_time, venue, requirements, notes,
		priority, status, attachments, created_at, created_by, last_updated_at, last_updated_by`

func scanEventRow(row pgx.Row) (models.Event, error) {
	var m models.Event
	err := row.Scan(
		&m.EventID,
		&m.UserID,
		&m.Title,
		&m.Description,
		&m.EventDate,
		&m.EventTime,
		&m.Venue,
		&m.Requirements,
		&m.Notes,
		&m.Priority,
		&m.Status,
		&m.Attachments,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	m := toModelEvent(event)
	query := `
        INSERT INTO events (event_id, user_id, title, description, event_date, event_time, venue, requirements,
            notes, priority, status, attachments, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
    `
	_, err := r.db.Exec(ctx, query,
		m.EventID,
		m.UserID,
		m.Title,
		m.Description,
		m.EventDate,
		m.EventTime,
		m.Venue,
		m.Requirements,
		m.Notes,
		m.Priority,
		m.Status,
		m.Attachments,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, userID string, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1 AND user_id = $2;`
	m, err := scanEventRow(r.db.QueryRow(ctx, query, eventID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event by ID %s: %w", eventID, err)
	}
	event, err := toDomainEvent(m)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *PgxEventRepository) FindEventsByUser(ctx context.Context, userID string) ([]domain.Event, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM events
        WHERE user_id = $1
        ORDER BY event_date ASC, event_time ASC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		m, err := scanEventRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		event, err := toDomainEvent(m)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", rows.Err())
	}

	return events, nil
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	m := toModelEvent(event)
	query := `
        UPDATE events
        SET title = $1, description = $2, event_date = $3, event_time = $4, venue = $5, requirements = $6,
            notes = $7, priority = $8, status = $9, attachments = $10, last_updated_at = $11, last_updated_by = $12
        WHERE event_id = $13 AND user_id = $14;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Title,
		m.Description,
		m.EventDate,
		m.EventTime,
		m.Venue,
		m.Requirements,
		m.Notes,
		m.Priority,
		m.Status,
		m.Attachments,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.EventID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update event query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEventRepository) UpdateEventStatus(ctx context.Context, userID string, eventID string, status domain.EventStatus, updatedAt time.Time) error {
	query := `
        UPDATE events
        SET status = $1, last_updated_at = $2, last_updated_by = $3
        WHERE event_id = $4 AND user_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query, string(status), updatedAt, userID, eventID, userID)
	if err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
