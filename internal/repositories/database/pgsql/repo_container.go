package pgsql

import (
	portsrepo "github.com/daybookhq/daybook-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider constructs all pgsql-backed repositories over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newPgxUserRepository(pool),
		EventRepo:   newPgxEventRepository(pool),
		JournalRepo: newPgxJournalRepository(pool),
	}
}
