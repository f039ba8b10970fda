package models

// EventStatus mirrors the enumerated event status values at the storage layer.
type EventStatus string

// EventPriority mirrors the enumerated event priority values at the storage layer.
type EventPriority string

// Event is the database representation of an event row.
// event_date and event_time are stored as text in the wire formats
// (2006-01-02 and 15:04); ordering happens in the domain layer.
type Event struct {
	EventID      string        `db:"event_id"`
	UserID       string        `db:"user_id"`
	Title        string        `db:"title"`
	Description  string        `db:"description"`
	EventDate    string        `db:"event_date"`
	EventTime    string        `db:"event_time"`
	Venue        string        `db:"venue"`
	Requirements []string      `db:"requirements"`
	Notes        string        `db:"notes"`
	Priority     EventPriority `db:"priority"`
	Status       EventStatus   `db:"status"`
	Attachments  []string      `db:"attachments"`
	AuditFields
}
