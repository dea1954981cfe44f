package memory

import (
	"context"
	"sync"

	"adforge/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository with an
// in-process ordered slice. The identifier for a new campaign is the
// slice length plus one; the mutex keeps the read-assign-append sequence
// atomic under concurrent request handling.
type CampaignRepository struct {
	mu        sync.RWMutex
	campaigns []domain.Campaign
}

// NewCampaignRepository returns an empty repository.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{}
}

// Add assigns the next sequential identifier and appends the campaign.
func (r *CampaignRepository) Add(_ context.Context, c domain.Campaign) (domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = int64(len(r.campaigns)) + 1
	r.campaigns = append(r.campaigns, c)
	return c, nil
}

// List returns all campaigns in insertion order. The returned slice is a
// copy; callers may not mutate stored state through it.
func (r *CampaignRepository) List(_ context.Context) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Campaign, len(r.campaigns))
	copy(out, r.campaigns)
	return out, nil
}

// GetByID returns a campaign by id, or nil when absent.
func (r *CampaignRepository) GetByID(_ context.Context, id int64) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.campaigns {
		if r.campaigns[i].ID == id {
			c := r.campaigns[i]
			return &c, nil
		}
	}
	return nil, nil
}
