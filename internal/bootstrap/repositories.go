package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursecast/coursecast/internal/database/postgres"
	"github.com/coursecast/coursecast/internal/eventlog"
	"github.com/coursecast/coursecast/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// Centralizing construction here keeps cmd/app wiring readable.
type Repositories struct {
	User       repository.User
	Catalog    repository.Catalog
	Ledger     repository.Ledger
	Engagement repository.Engagement
	Royalty    *postgres.RoyaltyRepository
	EventLog   eventlog.Repository
}

// InitializeRepositories creates all repository implementations over one pool.
// Royalty keeps its concrete type because the distribution service also needs
// its transaction methods.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:       postgres.NewUserRepository(dbPool),
		Catalog:    postgres.NewCatalogRepository(dbPool),
		Ledger:     postgres.NewLedgerRepository(dbPool),
		Engagement: postgres.NewEngagementRepository(dbPool),
		Royalty:    postgres.NewRoyaltyRepository(dbPool),
		EventLog:   postgres.NewEventLogRepository(dbPool),
	}
}
