package services

import (
	"context"

	"github.com/daybookhq/daybook-backend/internal/core/domain"
	"github.com/daybookhq/daybook-backend/internal/dto"
)

// EventReaderSvc defines read operations for event data
type EventReaderSvc interface {
	// ListEvents loads the user's events, filters them by the search query
	// (case-insensitive substring over title/description/venue; empty query
	// matches all) and returns them in display order: completed events after
	// all non-completed events, each partition ascending by (date, time).
	ListEvents(ctx context.Context, userID string, query string) ([]domain.Event, error)

	// GetEventByID retrieves a single event owned by userID.
	GetEventByID(ctx context.Context, userID string, eventID string) (*domain.Event, error)
}

// EventWriterSvc defines write operations for event data
type EventWriterSvc interface {
	// CreateEvent validates, normalizes and persists a new event. New events
	// always start in the pending status regardless of submitted state.
	CreateEvent(ctx context.Context, userID string, req dto.CreateEventRequest) (*domain.Event, error)

	// UpdateEvent validates and overwrites all fields of an existing event,
	// including its status (the reschedule path re-submits through here).
	UpdateEvent(ctx context.Context, userID string, eventID string, req dto.UpdateEventRequest) (*domain.Event, error)

	// MarkEventDone sets status=completed on the identified event, touching
	// nothing else besides the update timestamp.
	MarkEventDone(ctx context.Context, userID string, eventID string) (*domain.Event, error)
}

// EventSvcFacade combines all event-related service interfaces
type EventSvcFacade interface {
	EventReaderSvc
	EventWriterSvc
}
