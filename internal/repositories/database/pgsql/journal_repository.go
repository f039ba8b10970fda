package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/daybookhq/daybook-backend/internal/apperrors"
	"github.com/daybookhq/daybook-backend/internal/core/domain"
	portsrepo "github.com/daybookhq/daybook-backend/internal/core/ports/repositories"
	"github.com/daybookhq/daybook-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	db *pgxpool.Pool
}

func newPgxJournalRepository(db *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{db: db}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// Helper to convert domain.JournalEntry to models.JournalEntry
func toModelEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		UserID:      d.UserID,
		Title:       d.Title,
		Content:     d.Content,
		EntryDate:   d.EntryDate,
		Mood:        string(d.Mood),
		Tags:        d.Tags,
		Attachments: d.Attachments,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.JournalEntry to domain.JournalEntry. Rejects rows
// whose mood column holds a value outside the closed mood set.
func toDomainEntry(m models.JournalEntry) (domain.JournalEntry, error) {
	mood := domain.Mood(m.Mood)
	if !mood.IsValid() {
		return domain.JournalEntry{}, fmt.Errorf("journal entry %s has invalid mood %q", m.EntryID, m.Mood)
	}
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		UserID:      m.UserID,
		Title:       m.Title,
		Content:     m.Content,
		EntryDate:   m.EntryDate,
		Mood:        mood,
		Tags:        m.Tags,
		Attachments: m.Attachments,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}

const entryColumns = `entry_id, user_id, title, content, entry_date, mood, tags, attachments,
		created_at, created_by, last_updated_at, last_updated_by`

func scanEntryRow(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.UserID,
		&m.Title,
		&m.Content,
		&m.EntryDate,
		&m.Mood,
		&m.Tags,
		&m.Attachments,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := toModelEntry(entry)
	query := `
        INSERT INTO journal_entries (entry_id, user_id, title, content, entry_date, mood, tags, attachments,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.db.Exec(ctx, query,
		m.EntryID,
		m.UserID,
		m.Title,
		m.Content,
		m.EntryDate,
		m.Mood,
		m.Tags,
		m.Attachments,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal entry: %w", err)
	}
	return nil
}

func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, userID string, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1 AND user_id = $2;`
	m, err := scanEntryRow(r.db.QueryRow(ctx, query, entryID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry by ID %s: %w", entryID, err)
	}
	entry, err := toDomainEntry(m)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *PgxJournalRepository) FindEntriesByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM journal_entries
        WHERE user_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		m, err := scanEntryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entry, err := toDomainEntry(m)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", rows.Err())
	}

	return entries, nil
}

func (r *PgxJournalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := toModelEntry(entry)
	query := `
        UPDATE journal_entries
        SET title = $1, content = $2, entry_date = $3, mood = $4, tags = $5, attachments = $6,
            last_updated_at = $7, last_updated_by = $8
        WHERE entry_id = $9 AND user_id = $10;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Title,
		m.Content,
		m.EntryDate,
		m.Mood,
		m.Tags,
		m.Attachments,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.EntryID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update journal entry query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("journal entry not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
