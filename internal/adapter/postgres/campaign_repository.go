package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adforge/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. It mirrors the in-memory store's identifier contract: a new
// campaign gets id = current count + 1, assigned inside a serializable
// transaction so concurrent inserts cannot observe the same count.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, name, ad_copy, copy_source, banner_url, created_on, status, impressions, ctr, targeting`

// Add assigns the next sequential identifier and inserts the campaign.
func (r *CampaignRepository) Add(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return domain.Campaign{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var count int64
	if err = tx.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&count); err != nil {
		return domain.Campaign{}, err
	}
	c.ID = count + 1

	var createdOn time.Time
	createdOn, err = time.Parse("2006-01-02", c.Date)
	if err != nil {
		return domain.Campaign{}, err
	}
	var targeting []byte
	targeting, err = json.Marshal(c.Targeting)
	if err != nil {
		return domain.Campaign{}, err
	}

	_, err = tx.Exec(ctx, `INSERT INTO campaigns
(id, name, ad_copy, copy_source, banner_url, created_on, status, impressions, ctr, targeting, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now())`,
		c.ID, c.Name, c.AdCopy, string(c.CopySource), c.BannerURL, createdOn, c.Status, c.Impressions, c.CTR, targeting)
	if err != nil {
		return domain.Campaign{}, err
	}
	return c, nil
}

// List returns all campaigns in insertion order.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// GetByID returns a campaign by id, or nil when absent.
func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c            domain.Campaign
		copySource   string
		createdOn    time.Time
		targetingRaw []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.AdCopy,
		&copySource,
		&c.BannerURL,
		&createdOn,
		&c.Status,
		&c.Impressions,
		&c.CTR,
		&targetingRaw,
	)
	if err != nil {
		return c, err
	}
	c.CopySource = domain.CopySource(copySource)
	c.Date = createdOn.Format("2006-01-02")
	if err = json.Unmarshal(targetingRaw, &c.Targeting); err != nil {
		return c, err
	}
	return c, nil
}
