package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts a handful of demo campaigns so a fresh postgres-backed
// deployment has something to show on the dashboard. Existing rows are
// left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	interests := [][]string{
		{"Technology", "Travel"},
		{"Fashion", "Sports"},
		{"Food", "Health"},
	}

	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("Demo Campaign %d", i)
		picked := interests[i-1]
		targeting, err := json.Marshal(map[string]interface{}{
			"age":       "25-45",
			"location":  "US",
			"interests": picked,
		})
		if err != nil {
			return err
		}
		adCopy := fmt.Sprintf("Engaging ad copy for %s targeting %s, %s.", name, picked[0], picked[1])
		impressions := 1000 + r.Intn(9001)
		ctr := math.Round((0.5+r.Float64()*4.5)*100) / 100

		_, err = db.Exec(ctx, `INSERT INTO campaigns
(id, name, ad_copy, copy_source, banner_url, created_on, status, impressions, ctr, targeting, created_at)
VALUES ($1,$2,$3,'fallback','https://via.placeholder.com/120?text=No+Image',current_date,'Active',$4,$5,$6,now())
ON CONFLICT DO NOTHING`,
			i, name, adCopy, impressions, ctr, targeting)
		if err != nil {
			return err
		}
	}
	return nil
}
