// internal/model/campaign.go
package model

import "time"

const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

type Campaign struct {
	ID             string     `db:"id" json:"id"`
	UserID         string     `db:"user_id" json:"user_id"`
	ProductID      string     `db:"product_id" json:"product_id"`
	Name           string     `db:"name" json:"name"`
	Status         string     `db:"status" json:"status"`
	Mode           string     `db:"mode" json:"mode"`
	SelectedNiches []string   `db:"selected_niches" json:"selected_niches"`
	BudgetRange    string     `db:"budget_range" json:"budget_range,omitempty"`
	MinFollowers   *int       `db:"min_followers" json:"min_followers,omitempty"`
	MaxFollowers   *int       `db:"max_followers" json:"max_followers,omitempty"`
	MinEngagement  *float64   `db:"min_engagement" json:"min_engagement,omitempty"`
	Location       string     `db:"location" json:"location,omitempty"`
	Language       string     `db:"language" json:"language,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
