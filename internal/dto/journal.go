package dto

import (
	"time"

	"github.com/daybookhq/daybook-backend/internal/core/domain"
)

// CreateJournalEntryRequest defines the payload for creating a journal entry.
type CreateJournalEntryRequest struct {
	Title       string   `json:"title" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Date        string   `json:"date" binding:"required,datetime=2006-01-02"`
	Mood        string   `json:"mood" binding:"required,oneof=happy sad excited calm anxious grateful"`
	Tags        []string `json:"tags"`
	Attachments []string `json:"attachments"`
}

// UpdateJournalEntryRequest defines the payload for a full-field entry overwrite.
type UpdateJournalEntryRequest struct {
	Title       string   `json:"title" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Date        string   `json:"date" binding:"required,datetime=2006-01-02"`
	Mood        string   `json:"mood" binding:"required,oneof=happy sad excited calm anxious grateful"`
	Tags        []string `json:"tags"`
	Attachments []string `json:"attachments"`
}

// ListJournalEntriesParams defines query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	Query string `form:"q"`
}

// JournalEntryResponse defines the journal entry data returned by the API.
type JournalEntryResponse struct {
	EntryID     string    `json:"entryID"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Date        string    `json:"date"`
	Mood        string    `json:"mood"`
	Tags        []string  `json:"tags"`
	Attachments []string  `json:"attachments"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListJournalEntriesResponse wraps the ordered list of journal entries.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to a JournalEntryResponse DTO.
func ToJournalEntryResponse(j *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:     j.EntryID,
		Title:       j.Title,
		Content:     j.Content,
		Date:        j.EntryDate,
		Mood:        string(j.Mood),
		Tags:        j.Tags,
		Attachments: j.Attachments,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.LastUpdatedAt,
	}
}

// ToListJournalEntriesResponse converts a slice of domain.JournalEntry to ListJournalEntriesResponse.
func ToListJournalEntriesResponse(entries []domain.JournalEntry) ListJournalEntriesResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalEntryResponse(&entries[i])
	}
	return ListJournalEntriesResponse{Entries: responses}
}
