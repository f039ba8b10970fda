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

// journalService implements the JournalSvcFacade.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewJournalService creates a new instance of journalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// ListEntries returns the user's journal entries newest first, filtered by the
// search query over title, content and tags.
func (s *journalService) ListEntries(ctx context.Context, userID string, query string) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.FindEntriesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to list journal entries", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return domain.FilterJournalEntries(entries, strings.TrimSpace(query)), nil
}

func (s *journalService) GetEntryByID(ctx context.Context, userID string, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// validateEntryFields checks the trimmed required fields and the date format.
func validateEntryFields(title, content, date, mood string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be blank: %w", apperrors.ErrValidation)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content must not be blank: %w", apperrors.ErrValidation)
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return fmt.Errorf("date must match %s: %w", domain.DateLayout, apperrors.ErrValidation)
	}
	if !domain.Mood(mood).IsValid() {
		return fmt.Errorf("invalid mood %q: %w", mood, apperrors.ErrValidation)
	}
	return nil
}

// CreateEntry validates, normalizes and persists a new journal entry. The
// entry is written to the store first and only the stored record is returned.
func (s *journalService) CreateEntry(ctx context.Context, userID string, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	if err := validateEntryFields(req.Title, req.Content, req.Date, req.Mood); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Content:     req.Content,
		EntryDate:   req.Date,
		Mood:        domain.Mood(req.Mood),
		Tags:        domain.UniqueStrings(req.Tags),
		Attachments: domain.UniqueStrings(req.Attachments),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "failed to save journal entry", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	s.LogInfo(ctx, "journal entry created", slog.String("entry_id", entry.EntryID), slog.String("user_id", userID))
	return &entry, nil
}

// UpdateEntry overwrites all fields of an existing journal entry.
func (s *journalService) UpdateEntry(ctx context.Context, userID string, entryID string, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error) {
	if err := validateEntryFields(req.Title, req.Content, req.Date, req.Mood); err != nil {
		return nil, err
	}

	existing, err := s.journalRepo.FindEntryByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Title = strings.TrimSpace(req.Title)
	updated.Content = req.Content
	updated.EntryDate = req.Date
	updated.Mood = domain.Mood(req.Mood)
	updated.Tags = domain.UniqueStrings(req.Tags)
	updated.Attachments = domain.UniqueStrings(req.Attachments)
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = userID

	if err := s.journalRepo.UpdateEntry(ctx, updated); err != nil {
		s.LogError(ctx, err, "failed to update journal entry", slog.String("entry_id", entryID), slog.String("user_id", userID))
		return nil, err
	}

	return &updated, nil
}
