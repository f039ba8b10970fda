package domain

import (
	"sort"
	"strings"
	"time"
)

// EventStatus indicates the lifecycle state of an event.
type EventStatus string

const (
	EventStatusPending     EventStatus = "pending"
	EventStatusCompleted   EventStatus = "completed"
	EventStatusRescheduled EventStatus = "rescheduled"
)

// IsValid reports whether the status is one of the enumerated values.
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusPending, EventStatusCompleted, EventStatusRescheduled:
		return true
	}
	return false
}

// EventPriority indicates the importance of an event.
type EventPriority string

const (
	PriorityLow    EventPriority = "low"
	PriorityMedium EventPriority = "medium"
	PriorityHigh   EventPriority = "high"
)

// IsValid reports whether the priority is one of the enumerated values.
func (p EventPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// DateLayout and TimeLayout are the wire formats for event dates and times.
// No timezone is modeled; the values are kept in the user's local interpretation.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	scheduleLayout = DateLayout + "T" + TimeLayout
)

// Event represents a scheduled event or appointment belonging to a user.
type Event struct {
	EventID      string        `json:"eventID"` // Primary Key (UUID)
	UserID       string        `json:"userID"`  // Owning user
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	EventDate    string        `json:"date"` // DateLayout
	EventTime    string        `json:"time"` // TimeLayout
	Venue        string        `json:"venue"`
	Requirements []string      `json:"requirements"` // unique by exact string
	Notes        string        `json:"notes"`
	Priority     EventPriority `json:"priority"` // Default: medium
	Status       EventStatus   `json:"status"`   // Default: pending
	Attachments  []string      `json:"attachments"`
	AuditFields
}

// ScheduledAt builds the orderable instant from EventDate and EventTime.
// The time of day is parsed against a fixed reference date since only the
// time-of-day component carries meaning. The second return value is false
// when the pair does not parse.
func (e *Event) ScheduledAt() (time.Time, bool) {
	t, err := time.Parse(scheduleLayout, e.EventDate+"T"+e.EventTime)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MatchesQuery reports whether query is a case-insensitive substring of the
// event's title, description or venue. An empty query matches every event.
func (e *Event) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(e.Venue), q)
}

// AddRequirement appends req to the requirements list. Adding a value that is
// already present (exact string match) is a no-op. Reports whether the list changed.
func (e *Event) AddRequirement(req string) bool {
	var added bool
	e.Requirements, added = appendUnique(e.Requirements, req)
	return added
}

// RemoveRequirement removes req from the requirements list. Removing a value
// that is not present is a no-op. Reports whether the list changed.
func (e *Event) RemoveRequirement(req string) bool {
	var removed bool
	e.Requirements, removed = removeValue(e.Requirements, req)
	return removed
}

// SortEventsForDisplay orders events in place for presentation: every
// completed event sorts after every non-completed event, and within each
// partition events appear in ascending (date, time) order. The sort is
// stable, so events with equal keys keep their relative order.
func SortEventsForDisplay(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := &events[i], &events[j]
		aDone := a.Status == EventStatusCompleted
		bDone := b.Status == EventStatusCompleted
		if aDone != bDone {
			return !aDone
		}
		at, aOK := a.ScheduledAt()
		bt, bOK := b.ScheduledAt()
		if aOK && bOK {
			return at.Before(bt)
		}
		// Unparseable date/time pairs fall back to lexicographic comparison,
		// which matches the instant ordering for well-formed values.
		return a.EventDate+"T"+a.EventTime < b.EventDate+"T"+b.EventTime
	})
}

// FilterEvents returns the subset of events matching query, preserving order.
func FilterEvents(events []Event, query string) []Event {
	if query == "" {
		return events
	}
	filtered := make([]Event, 0, len(events))
	for _, e := range events {
		if e.MatchesQuery(query) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
