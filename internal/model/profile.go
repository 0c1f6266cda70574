// internal/model/profile.go
package model

import "time"

type Profile struct {
	ID          string    `db:"id" json:"id"`
	Email       string    `db:"email" json:"email"`
	FullName    string    `db:"full_name" json:"full_name"`
	CompanyName string    `db:"company_name" json:"company_name"`
	CompanyType string    `db:"company_type" json:"company_type"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// DashboardStats are the per-owner counters shown on the dashboard.
type DashboardStats struct {
	Products  int `json:"products"`
	Campaigns int `json:"campaigns"`
	Matches   int `json:"matches"`
}
