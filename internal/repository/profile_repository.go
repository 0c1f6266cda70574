package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/unclebandit/influencer-campaign-backend/internal/model"
)

type ProfileRepositoryInterface interface {
	Create(ctx context.Context, p *model.Profile) error
}

type ProfileRepository struct {
	DB *sql.DB
}

// Create inserts a profile whose ID is the auth identity's ID.
func (r *ProfileRepository) Create(ctx context.Context, p *model.Profile) error {
	p.CreatedAt = time.Now()
	query := `
        INSERT INTO profiles (id, email, full_name, company_name, company_type, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.DB.ExecContext(ctx, query, p.ID, p.Email,
		nullString(p.FullName), nullString(p.CompanyName), nullString(p.CompanyType), p.CreatedAt)
	return err
}

var _ ProfileRepositoryInterface = (*ProfileRepository)(nil)
