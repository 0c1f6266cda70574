// internal/service/campaign_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appErrors "github.com/unclebandit/influencer-campaign-backend/internal/errors"
	"github.com/unclebandit/influencer-campaign-backend/internal/model"
	"github.com/unclebandit/influencer-campaign-backend/internal/queue"
	"github.com/unclebandit/influencer-campaign-backend/internal/repository"
	"github.com/unclebandit/influencer-campaign-backend/internal/wizard"
)

const DefaultWriteTimeout = 5 * time.Second

type CampaignService struct {
	ProductRepo  repository.ProductRepositoryInterface
	CampaignRepo repository.CampaignRepositoryInterface
	Queue        queue.Queue
	WriteTimeout time.Duration
	Log          zerolog.Logger
}

func (s *CampaignService) writeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.WriteTimeout
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// SubmitCampaign writes the product, then the campaign that references it.
// The two writes are not atomic: when the campaign insert fails the product
// stays and a PartialCommitError names it.
func (s *CampaignService) SubmitCampaign(ctx context.Context, userID, campaignName string, d wizard.Draft) (*model.Campaign, error) {
	if d.ProductDetails == nil {
		return nil, appErrors.NewValidation("product_details", "complete the product details")
	}

	pd := d.ProductDetails
	product := &model.Product{
		UserID:         userID,
		Name:           pd.Name,
		Description:    pd.Description,
		Price:          pd.Price,
		Category:       pd.Category,
		ImageURL:       pd.ImageURL,
		TargetAudience: pd.TargetAudience,
		KeyMessage:     pd.KeyMessage,
	}

	pctx, cancel := s.writeCtx(ctx)
	err := s.ProductRepo.Create(pctx, product)
	cancel()
	if err != nil {
		s.Log.Error().Err(err).Str("user_id", userID).Msg("failed to create product")
		return nil, fmt.Errorf("create product: %w", err)
	}

	campaign := &model.Campaign{
		UserID:         userID,
		ProductID:      product.ID,
		Name:           campaignName,
		Mode:           string(d.Mode),
		SelectedNiches: append([]string{}, d.SelectedNiches...),
		Status:         model.CampaignStatusActive,
	}
	if sc := d.SearchCriteria; sc != nil {
		campaign.MinFollowers = sc.MinFollowers
		campaign.MaxFollowers = sc.MaxFollowers
		campaign.MinEngagement = sc.MinEngagement
		campaign.Location = sc.Location
		campaign.Language = sc.Language
		campaign.BudgetRange = sc.BudgetRange
	}

	cctx, cancel := s.writeCtx(ctx)
	err = s.CampaignRepo.Create(cctx, campaign)
	cancel()
	if err != nil {
		// TODO: decide with product whether orphaned products get cleaned up.
		s.Log.Error().Err(err).Str("user_id", userID).Str("product_id", product.ID).
			Msg("campaign insert failed, product left without campaign")
		return nil, &appErrors.PartialCommitError{ProductID: product.ID, Err: err}
	}

	s.publishCreated(campaign)
	return campaign, nil
}

func (s *CampaignService) publishCreated(c *model.Campaign) {
	if s.Queue == nil {
		return
	}
	evt := queue.CampaignCreated{
		CampaignID:     c.ID,
		ProductID:      c.ProductID,
		UserID:         c.UserID,
		Mode:           c.Mode,
		SelectedNiches: c.SelectedNiches,
	}
	if err := s.Queue.Publish(queue.TopicCampaignCreated, evt); err != nil {
		s.Log.Warn().Err(err).Str("campaign_id", c.ID).Msg("failed to publish campaign.created")
	}
}

// GetCampaign returns a campaign owned by userID.
// Ids that aren't UUIDs can't exist, so they are not found.
func (s *CampaignService) GetCampaign(ctx context.Context, userID, id string) (*model.Campaign, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	c, err := s.CampaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	return c, nil
}

// ListCampaigns fetches the user's campaigns with pagination
func (s *CampaignService) ListCampaigns(ctx context.Context, userID string, page, pageSize int) ([]model.Campaign, map[string]int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize

	ptrs, total, err := s.CampaignRepo.ListByUser(ctx, userID, offset, pageSize)
	if err != nil {
		return nil, nil, err
	}

	campaigns := make([]model.Campaign, len(ptrs))
	for i, c := range ptrs {
		campaigns[i] = *c
	}

	pagination := map[string]int{
		"page":        page,
		"page_size":   pageSize,
		"total_count": total,
		"total_pages": (total + pageSize - 1) / pageSize,
	}
	return campaigns, pagination, nil
}

var _ wizard.Submitter = (*CampaignService)(nil)
