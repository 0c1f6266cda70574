package service

import (
	"context"
	"fmt"

	"github.com/unclebandit/influencer-campaign-backend/internal/model"
	"github.com/unclebandit/influencer-campaign-backend/internal/repository"
)

type DashboardService struct {
	ProductRepo  repository.ProductRepositoryInterface
	CampaignRepo repository.CampaignRepositoryInterface
	MatchRepo    repository.MatchRepositoryInterface
}

// Stats counts what userID owns. Matches are counted through the
// campaigns they belong to.
func (s *DashboardService) Stats(ctx context.Context, userID string) (*model.DashboardStats, error) {
	products, err := s.ProductRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	campaigns, err := s.CampaignRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count campaigns: %w", err)
	}
	matches, err := s.MatchRepo.CountByCampaignOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count matches: %w", err)
	}
	return &model.DashboardStats{Products: products, Campaigns: campaigns, Matches: matches}, nil
}
