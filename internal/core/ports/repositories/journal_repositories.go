package repositories

import (
	"context"

	"github.com/daybookhq/daybook-backend/internal/core/domain"
)

// JournalReader defines read operations for journal entry data
type JournalReader interface {
	// FindEntryByID retrieves a specific journal entry owned by userID.
	FindEntryByID(ctx context.Context, userID string, entryID string) (*domain.JournalEntry, error)

	// FindEntriesByUser retrieves all journal entries owned by userID,
	// ordered by created_at descending (insertion order, newest first).
	FindEntriesByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal entry data
type JournalWriter interface {
	// SaveEntry persists a new journal entry.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateEntry overwrites all user-editable fields of an existing entry.
	UpdateEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
