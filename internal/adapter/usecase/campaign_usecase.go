package usecase

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"time"

	"adforge/internal/core/domain"
	"adforge/internal/core/port"
)

// CampaignUseCase provides the campaign workflow: authentication against
// the seeded account, campaign creation with banner resolution, copy
// generation and simulated analytics, plus the read operations. It
// orchestrates the outbound ports and implements port.CampaignUseCase.
type CampaignUseCase struct {
	repo     port.CampaignRepository
	accounts port.AccountRepository
	copy     port.CopyGenerator
	assets   port.AssetIngestor

	// now is stubbed in tests to pin the creation date.
	now func() time.Time
}

// NewCampaignUseCase creates a usecase wired to the provided ports.
func NewCampaignUseCase(repo port.CampaignRepository, accounts port.AccountRepository, copygen port.CopyGenerator, assets port.AssetIngestor) *CampaignUseCase {
	return &CampaignUseCase{
		repo:     repo,
		accounts: accounts,
		copy:     copygen,
		assets:   assets,
		now:      time.Now,
	}
}

// Authenticate resolves the submitted email to the seeded account. The
// comparison is exact: case variants and empty input are rejected with
// port.ErrInvalidCredentials, which carries no detail on which check
// failed.
func (u *CampaignUseCase) Authenticate(ctx context.Context, email string) (*domain.Account, error) {
	acc, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if acc == nil || acc.Email != email {
		return nil, port.ErrInvalidCredentials
	}
	return acc, nil
}

// AccountByID restores a session principal from a stored identifier.
func (u *CampaignUseCase) AccountByID(ctx context.Context, id string) (*domain.Account, error) {
	return u.accounts.GetByID(ctx, id)
}

// CreateCampaign assembles and stores a campaign from form input. Every
// step runs unconditionally once the caller has an active session: field
// defaulting, banner resolution, copy generation, simulated analytics,
// identifier assignment and append.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (domain.Campaign, error) {
	name := strings.TrimSpace(req.Name)
	ageRange := req.AgeRange
	if ageRange == "" {
		ageRange = "25-45"
	}
	location := req.Location
	if location == "" {
		location = "US"
	}
	interests := req.Interests
	if len(interests) == 0 {
		interests = []string{"General"}
	}

	bannerURL, err := u.assets.Ingest(ctx, req.Banner, strings.TrimSpace(req.BannerURL))
	if err != nil {
		return domain.Campaign{}, err
	}

	adCopy := u.copy.Generate(ctx, name, strings.Join(interests, ", "))

	campaign := domain.Campaign{
		Name:        name,
		AdCopy:      adCopy.Text,
		CopySource:  adCopy.Source,
		BannerURL:   bannerURL,
		Date:        u.now().Format("2006-01-02"),
		Status:      domain.StatusActive,
		Impressions: 1000 + rand.Intn(9001),
		CTR:         round2(0.5 + rand.Float64()*4.5),
		Targeting: domain.Targeting{
			AgeRange:  ageRange,
			Location:  location,
			Interests: interests,
		},
	}

	return u.repo.Add(ctx, campaign)
}

// ListCampaigns returns all campaigns in insertion order.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.List(ctx)
}

// GetCampaign returns a campaign by id, or nil when absent.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return u.repo.GetByID(ctx, id)
}

// round2 rounds to two fraction digits.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
