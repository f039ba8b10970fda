package domain

import "strings"

// Mood captures the emotional state attached to a journal entry.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodSad      Mood = "sad"
	MoodExcited  Mood = "excited"
	MoodCalm     Mood = "calm"
	MoodAnxious  Mood = "anxious"
	MoodGrateful Mood = "grateful"
)

// IsValid reports whether the mood is one of the enumerated values.
func (m Mood) IsValid() bool {
	switch m {
	case MoodHappy, MoodSad, MoodExcited, MoodCalm, MoodAnxious, MoodGrateful:
		return true
	}
	return false
}

// JournalEntry represents a single diary entry belonging to a user.
type JournalEntry struct {
	EntryID     string   `json:"entryID"` // Primary Key (UUID)
	UserID      string   `json:"userID"`  // Owning user
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	EntryDate   string   `json:"date"` // DateLayout
	Mood        Mood     `json:"mood"`
	Tags        []string `json:"tags"` // unique by exact string
	Attachments []string `json:"attachments"`
	AuditFields
}

// MatchesQuery reports whether query is a case-insensitive substring of the
// entry's title, content or any tag. An empty query matches every entry.
func (j *JournalEntry) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(j.Title), q) || strings.Contains(strings.ToLower(j.Content), q) {
		return true
	}
	for _, tag := range j.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// AddTag appends tag to the tag list. Adding a value that is already present
// (exact string match) is a no-op. Reports whether the list changed.
func (j *JournalEntry) AddTag(tag string) bool {
	var added bool
	j.Tags, added = appendUnique(j.Tags, tag)
	return added
}

// RemoveTag removes tag from the tag list. Removing a value that is not
// present is a no-op. Reports whether the list changed.
func (j *JournalEntry) RemoveTag(tag string) bool {
	var removed bool
	j.Tags, removed = removeValue(j.Tags, tag)
	return removed
}

// FilterJournalEntries returns the subset of entries matching query, preserving order.
func FilterJournalEntries(entries []JournalEntry, query string) []JournalEntry {
	if query == "" {
		return entries
	}
	filtered := make([]JournalEntry, 0, len(entries))
	for _, j := range entries {
		if j.MatchesQuery(query) {
			filtered = append(filtered, j)
		}
	}
	return filtered
}
