package domain

// Campaign represents a single advertising campaign together with its
// targeting metadata and simulated performance metrics. Identifiers are
// assigned sequentially by the repository at insertion time and campaigns
// are immutable once stored.
type Campaign struct {
	ID          int64
	Name        string
	AdCopy      string
	CopySource  CopySource
	BannerURL   string
	Date        string // calendar date, YYYY-MM-DD
	Status      string
	Impressions int
	CTR         float64 // click-through rate, 2 fraction digits
	Targeting   Targeting
}

// StatusActive is the only status assigned to campaigns in this version.
const StatusActive = "Active"
