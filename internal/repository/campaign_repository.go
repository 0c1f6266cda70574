package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	appErrors "github.com/unclebandit/influencer-campaign-backend/internal/errors"
	"github.com/unclebandit/influencer-campaign-backend/internal/model"
)

type CampaignRepositoryInterface interface {
	Create(ctx context.Context, c *model.Campaign) error
	GetByID(ctx context.Context, id string) (*model.Campaign, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]*model.Campaign, int, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

type CampaignRepository struct {
	DB *sql.DB
}

const campaignColumns = `id, user_id, product_id, name, status, mode, selected_niches, budget_range,
        min_followers, max_followers, min_engagement, location, language, created_at, updated_at`

func (r *CampaignRepository) Create(ctx context.Context, c *model.Campaign) error {
	c.CreatedAt = time.Now()
	if c.Status == "" {
		c.Status = model.CampaignStatusActive
	}
	query := `
        INSERT INTO campaigns (user_id, product_id, name, status, mode, selected_niches, budget_range,
            min_followers, max_followers, min_engagement, location, language, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id
    `
	return r.DB.QueryRowContext(ctx, query,
		c.UserID, c.ProductID, c.Name, c.Status, c.Mode, pq.Array(c.SelectedNiches), nullString(c.BudgetRange),
		c.MinFollowers, c.MaxFollowers, c.MinEngagement, nullString(c.Location), nullString(c.Language), c.CreatedAt,
	).Scan(&c.ID)
}

func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id=$1`
	c, err := scanCampaign(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return c, nil
}

func (r *CampaignRepository) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*model.Campaign, int, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	campaigns := []*model.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, 0, err
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	total, err := r.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

func (r *CampaignRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM campaigns WHERE user_id=$1`, userID).Scan(&total)
	return total, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*model.Campaign, error) {
	var (
		c                          model.Campaign
		budget, location, language sql.NullString
		minF, maxF                 sql.NullInt64
		minEng                     sql.NullFloat64
	)
	err := row.Scan(&c.ID, &c.UserID, &c.ProductID, &c.Name, &c.Status, &c.Mode, pq.Array(&c.SelectedNiches),
		&budget, &minF, &maxF, &minEng, &location, &language, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.BudgetRange = budget.String
	c.Location = location.String
	c.Language = language.String
	if minF.Valid {
		v := int(minF.Int64)
		c.MinFollowers = &v
	}
	if maxF.Valid {
		v := int(maxF.Int64)
		c.MaxFollowers = &v
	}
	if minEng.Valid {
		v := minEng.Float64
		c.MinEngagement = &v
	}
	return &c, nil
}

// nullString stores "" as NULL, the way the columns are declared.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
