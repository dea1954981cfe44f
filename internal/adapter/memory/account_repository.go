package memory

import (
	"context"

	"adforge/internal/core/domain"
)

// AccountRepository implements port.AccountRepository over a fixed
// account set seeded at construction. Accounts are never mutated, so no
// locking is needed.
type AccountRepository struct {
	byID map[string]domain.Account
}

// NewAccountRepository seeds the repository with the given accounts.
func NewAccountRepository(accounts ...domain.Account) *AccountRepository {
	byID := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &AccountRepository{byID: byID}
}

// GetByID returns the account with the given identifier, or nil.
func (r *AccountRepository) GetByID(_ context.Context, id string) (*domain.Account, error) {
	if a, ok := r.byID[id]; ok {
		return &a, nil
	}
	return nil, nil
}

// GetByEmail returns the account with the given email, or nil. The match
// is exact; case variants do not resolve.
func (r *AccountRepository) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.byID {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, nil
}
