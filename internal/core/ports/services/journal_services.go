package services

import (
	"context"

	"github.com/daybookhq/daybook-backend/internal/core/domain"
	"github.com/daybookhq/daybook-backend/internal/dto"
)

// JournalReaderSvc defines read operations for journal entry data
type JournalReaderSvc interface {
	// ListEntries loads the user's journal entries in insertion order
	// (newest first) filtered by the search query (case-insensitive
	// substring over title/content/tags; empty query matches all).
	ListEntries(ctx context.Context, userID string, query string) ([]domain.JournalEntry, error)

	// GetEntryByID retrieves a single journal entry owned by userID.
	GetEntryByID(ctx context.Context, userID string, entryID string) (*domain.JournalEntry, error)
}

// JournalWriterSvc defines write operations for journal entry data
type JournalWriterSvc interface {
	// CreateEntry validates, normalizes and persists a new journal entry.
	CreateEntry(ctx context.Context, userID string, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)

	// UpdateEntry validates and overwrites all fields of an existing entry.
	UpdateEntry(ctx context.Context, userID string, entryID string, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
