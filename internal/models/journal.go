package models

// JournalEntry is the database representation of a journal entry row.
type JournalEntry struct {
	EntryID     string   `db:"entry_id"`
	UserID      string   `db:"user_id"`
	Title       string   `db:"title"`
	Content     string   `db:"content"`
	EntryDate   string   `db:"entry_date"`
	Mood        string   `db:"mood"`
	Tags        []string `db:"tags"`
	Attachments []string `db:"attachments"`
	AuditFields
}
