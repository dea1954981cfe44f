package port

import (
	"context"
	"errors"
	"io"

	"adforge/internal/core/domain"
)

// ErrInvalidCredentials is returned by Authenticate for any submission
// that does not exactly match the seeded account. It carries no
// information about which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CampaignUseCase defines the business operations exposed by the campaign
// manager. This interface represents the primary port into the
// application domain. The HTTP layer depends on it and test fakes
// implement it.
type CampaignUseCase interface {
	// Authenticate resolves the submitted email to the seeded account.
	// It returns ErrInvalidCredentials for anything other than an exact
	// match, including case variants and empty input.
	Authenticate(ctx context.Context, email string) (*domain.Account, error)

	// AccountByID restores a session principal from a stored identifier.
	// It returns nil when no such account exists.
	AccountByID(ctx context.Context, id string) (*domain.Account, error)

	// CreateCampaign runs the full creation workflow: banner resolution,
	// ad copy generation, simulated analytics, identifier assignment and
	// append. It returns the stored campaign.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (domain.Campaign, error)

	// ListCampaigns returns all campaigns in insertion order. No
	// pagination, no filtering.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// GetCampaign returns a campaign by id, or nil when absent. An
	// absent campaign is not an error.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
}

// BannerUpload carries an uploaded banner file into the workflow. The
// reader is consumed at most once.
type BannerUpload struct {
	Filename string
	Reader   io.Reader
}

// CreateCampaignReq is the form input for campaign creation. Missing
// fields are defaulted by the workflow, not by the caller.
type CreateCampaignReq struct {
	Name      string
	AgeRange  string
	Location  string
	Interests []string
	BannerURL string
	Banner    *BannerUpload
}

// CopyGenerator produces ad copy for a product and a comma-joined
// keyword string. Generate always succeeds: failures of the external
// service degrade to a local template and are reported only through the
// result's Source field.
type CopyGenerator interface {
	Generate(ctx context.Context, productName, keywords string) domain.AdCopy
}

// AssetIngestor resolves the banner reference for a campaign. An upload
// with an allowed extension wins over the supplied URL; an unsupported
// upload is ignored; with neither input a fixed placeholder URL is
// returned. Only storage failures surface as errors.
type AssetIngestor interface {
	Ingest(ctx context.Context, upload *BannerUpload, suppliedURL string) (string, error)
}
