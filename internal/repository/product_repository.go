package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/unclebandit/influencer-campaign-backend/internal/model"
)

type ProductRepositoryInterface interface {
	Create(ctx context.Context, p *model.Product) error
	CountByUser(ctx context.Context, userID string) (int, error)
}

type ProductRepository struct {
	DB *sql.DB
}

// Create inserts the product and fills in the generated ID.
func (r *ProductRepository) Create(ctx context.Context, p *model.Product) error {
	p.CreatedAt = time.Now()
	query := `
        INSERT INTO products (user_id, name, description, price, category, image_url, target_audience, key_message, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	return r.DB.QueryRowContext(ctx, query,
		p.UserID, p.Name, nullString(p.Description), p.Price, nullString(p.Category),
		nullString(p.ImageURL), nullString(p.TargetAudience), nullString(p.KeyMessage), p.CreatedAt,
	).Scan(&p.ID)
}

func (r *ProductRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE user_id=$1`, userID).Scan(&total)
	return total, err
}

var _ ProductRepositoryInterface = (*ProductRepository)(nil)
