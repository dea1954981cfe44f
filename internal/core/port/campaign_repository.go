package port

import (
	"context"

	"adforge/internal/core/domain"
)

// CampaignRepository defines the persistence layer for campaigns. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe: identifier assignment reads the current size and
// appends, so the read-assign-append sequence has to happen under a
// single mutual-exclusion scope.
type CampaignRepository interface {
	// Add assigns the next sequential identifier (current count + 1) to
	// the campaign and appends it. The stored campaign is returned.
	Add(ctx context.Context, c domain.Campaign) (domain.Campaign, error)
	// List returns all campaigns in insertion order.
	List(ctx context.Context) ([]domain.Campaign, error)
	// GetByID returns a campaign by id, or nil when absent.
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
}

// AccountRepository answers lookup queries against the seeded account
// set. It exposes no create, update or delete operations.
type AccountRepository interface {
	// GetByID returns the account with the given identifier, or nil when
	// absent. Used to restore a session principal.
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	// GetByEmail returns the account with the given email, or nil when
	// absent.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}
