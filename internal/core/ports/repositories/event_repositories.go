package repositories

import (
	"context"
	"time"

	"github.com/daybookhq/daybook-backend/internal/core/domain"
)

// EventReader defines read operations for event data
type EventReader interface {
	// FindEventByID retrieves a specific event owned by userID.
	FindEventByID(ctx context.Context, userID string, eventID string) (*domain.Event, error)

	// FindEventsByUser retrieves all events owned by userID, ordered by
	// ascending (event_date, event_time) as a fetch hint. Display ordering
	// is applied by the service layer.
	FindEventsByUser(ctx context.Context, userID string) ([]domain.Event, error)
}

// EventWriter defines write operations for event data
type EventWriter interface {
	// SaveEvent persists a new event.
	SaveEvent(ctx context.Context, event domain.Event) error

	// UpdateEvent overwrites all user-editable fields of an existing event.
	UpdateEvent(ctx context.Context, event domain.Event) error

	// UpdateEventStatus sets only the status and last_updated columns of the
	// event identified by eventID, scoped to userID.
	UpdateEventStatus(ctx context.Context, userID string, eventID string, status domain.EventStatus, updatedAt time.Time) error
}

// EventRepositoryFacade combines all event-related repository interfaces.
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
