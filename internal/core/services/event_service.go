package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/daybookhq/daybook-backend/internal/apperrors"
	"github.com/daybookhq/daybook-backend/internal/core/domain"
	portsrepo "github.com/daybookhq/daybook-backend/internal/core/ports/repositories"
	portssvc "github.com/daybookhq/daybook-backend/internal/core/ports/services"
	"github.com/daybookhq/daybook-backend/internal/dto"
	"github.com/google/uuid"
	"log/slog"
)

// eventService implements the EventSvcFacade.
type eventService struct {
	BaseService
	eventRepo portsrepo.EventRepositoryFacade
}

// NewEventService creates a new instance of eventService.
func NewEventService(eventRepo portsrepo.EventRepositoryFacade) portssvc.EventSvcFacade {
	return &eventService{eventRepo: eventRepo}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

// ListEvents returns the user's events filtered by query in display order:
// completed events after all others, each partition ascending by (date, time).
func (s *eventService) ListEvents(ctx context.Context, userID string, query string) ([]domain.Event, error) {
	events, err := s.eventRepo.FindEventsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to list events", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	events = domain.FilterEvents(events, strings.TrimSpace(query))
	domain.SortEventsForDisplay(events)
	return events, nil
}

func (s *eventService) GetEventByID(ctx context.Context, userID string, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// validateEventFields checks the trimmed required fields and the date/time
// wire formats. Binding validation already rejects malformed payloads; this
// guards the service against whitespace-only values.
func validateEventFields(title, date, timeStr, venue string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be blank: %w", apperrors.ErrValidation)
	}
	if strings.TrimSpace(venue) == "" {
		return fmt.Errorf("venue must not be blank: %w", apperrors.ErrValidation)
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return fmt.Errorf("date must match %s: %w", domain.DateLayout, apperrors.ErrValidation)
	}
	if _, err := time.Parse(domain.TimeLayout, timeStr); err != nil {
		return fmt.Errorf("time must match %s: %w", domain.TimeLayout, apperrors.ErrValidation)
	}
	return nil
}

// CreateEvent validates, normalizes and persists a new event. The event is
// written to the store first and only the stored record is returned, so
// callers never observe an event that did not persist. Submitted status is
// ignored; new events always start pending.
func (s *eventService) CreateEvent(ctx context.Context, userID string, req dto.CreateEventRequest) (*domain.Event, error) {
	if err := validateEventFields(req.Title, req.Date, req.Time, req.Venue); err != nil {
		return nil, err
	}

	priority := domain.EventPriority(req.Priority)
	if req.Priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority %q: %w", req.Priority, apperrors.ErrValidation)
	}

	now := time.Now()
	event := domain.Event{
		EventID:      uuid.NewString(),
		UserID:       userID,
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		EventDate:    req.Date,
		EventTime:    req.Time,
		Venue:        strings.TrimSpace(req.Venue),
		Requirements: domain.UniqueStrings(req.Requirements),
		Notes:        req.Notes,
		Priority:     priority,
		Status:       domain.EventStatusPending,
		Attachments:  domain.UniqueStrings(req.Attachments),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "failed to save event", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.LogInfo(ctx, "event created", slog.String("event_id", event.EventID), slog.String("user_id", userID))
	return &event, nil
}

// UpdateEvent overwrites all fields of an existing event. The reschedule flow
// re-submits the event through here with a new date/time and status.
func (s *eventService) UpdateEvent(ctx context.Context, userID string, eventID string, req dto.UpdateEventRequest) (*domain.Event, error) {
	if err := validateEventFields(req.Title, req.Date, req.Time, req.Venue); err != nil {
		return nil, err
	}

	priority := domain.EventPriority(req.Priority)
	if req.Priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority %q: %w", req.Priority, apperrors.ErrValidation)
	}

	status := domain.EventStatus(req.Status)
	if req.Status == "" {
		status = domain.EventStatusPending
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status %q: %w", req.Status, apperrors.ErrValidation)
	}

	existing, err := s.eventRepo.FindEventByID(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Title = strings.TrimSpace(req.Title)
	updated.Description = req.Description
	updated.EventDate = req.Date
	updated.EventTime = req.Time
	updated.Venue = strings.TrimSpace(req.Venue)
	updated.Requirements = domain.UniqueStrings(req.Requirements)
	updated.Notes = req.Notes
	updated.Priority = priority
	updated.Status = status
	updated.Attachments = domain.UniqueStrings(req.Attachments)
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = userID

	if err := s.eventRepo.UpdateEvent(ctx, updated); err != nil {
		s.LogError(ctx, err, "failed to update event", slog.String("event_id", eventID), slog.String("user_id", userID))
		return nil, err
	}

	return &updated, nil
}

// MarkEventDone sets the event's status to completed, touching nothing else
// besides the update timestamp, and returns the stored record.
func (s *eventService) MarkEventDone(ctx context.Context, userID string, eventID string) (*domain.Event, error) {
	if err := s.eventRepo.UpdateEventStatus(ctx, userID, eventID, domain.EventStatusCompleted, time.Now()); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindEventByID(ctx, userID, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload event after status update: %w", err)
	}

	s.LogInfo(ctx, "event marked done", slog.String("event_id", eventID), slog.String("user_id", userID))
	return event, nil
}
