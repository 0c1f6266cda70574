package repository

import (
	"context"
	"database/sql"
)

// MatchRepositoryInterface reads the creator matches produced by the
// external matcher. Nothing in this service writes them.
type MatchRepositoryInterface interface {
	CountByCampaignOwner(ctx context.Context, userID string) (int, error)
}

type MatchRepository struct {
	DB *sql.DB
}

func (r *MatchRepository) CountByCampaignOwner(ctx context.Context, userID string) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM matches m
        JOIN campaigns c ON c.id = m.campaign_id
        WHERE c.user_id = $1
    `
	var total int
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&total)
	return total, err
}

var _ MatchRepositoryInterface = (*MatchRepository)(nil)
