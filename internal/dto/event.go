package dto

import (
	"time"

	"github.com/daybookhq/daybook-backend/internal/core/domain"
)

// CreateEventRequest defines the payload for creating an event.
// Title, date, time and venue are required; the service additionally rejects
// values that are blank after trimming. Status is not accepted on create —
// new events always start pending.
type CreateEventRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Date         string   `json:"date" binding:"required,datetime=2006-01-02"`
	Time         string   `json:"time" binding:"required,datetime=15:04"`
	Venue        string   `json:"venue" binding:"required"`
	Requirements []string `json:"requirements"`
	Notes        string   `json:"notes"`
	Priority     string   `json:"priority" binding:"omitempty,oneof=low medium high"`
	Attachments  []string `json:"attachments"`
}

// UpdateEventRequest defines the payload for a full-field event overwrite.
// The reschedule flow re-submits through this with a new date/time and/or
// status; the status defaults to pending when omitted.
type UpdateEventRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Date         string   `json:"date" binding:"required,datetime=2006-01-02"`
	Time         string   `json:"time" binding:"required,datetime=15:04"`
	Venue        string   `json:"venue" binding:"required"`
	Requirements []string `json:"requirements"`
	Notes        string   `json:"notes"`
	Priority     string   `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status       string   `json:"status" binding:"omitempty,oneof=pending completed rescheduled"`
	Attachments  []string `json:"attachments"`
}

// ListEventsParams defines query parameters for listing events.
type ListEventsParams struct {
	Query string `form:"q"`
}

// EventResponse defines the event data returned by the API.
type EventResponse struct {
	EventID      string    `json:"eventID"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Venue        string    `json:"venue"`
	Requirements []string  `json:"requirements"`
	Notes        string    `json:"notes"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	Attachments  []string  `json:"attachments"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ListEventsResponse wraps the ordered list of events.
type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

// ToEventResponse converts a domain.Event to an EventResponse DTO.
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID:      e.EventID,
		Title:        e.Title,
		Description:  e.Description,
		Date:         e.EventDate,
		Time:         e.EventTime,
		Venue:        e.Venue,
		Requirements: e.Requirements,
		Notes:        e.Notes,
		Priority:     string(e.Priority),
		Status:       string(e.Status),
		Attachments:  e.Attachments,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.LastUpdatedAt,
	}
}

// ToListEventsResponse converts a slice of domain.Event to ListEventsResponse.
func ToListEventsResponse(events []domain.Event) ListEventsResponse {
	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = ToEventResponse(&events[i])
	}
	return ListEventsResponse{Events: responses}
}
