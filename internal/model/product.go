// internal/model/product.go
package model

import "time"

type Product struct {
	ID             string     `db:"id" json:"id"`
	UserID         string     `db:"user_id" json:"user_id"`
	Name           string     `db:"name" json:"name"`
	Description    string     `db:"description" json:"description"`
	Price          *float64   `db:"price" json:"price"`
	Category       string     `db:"category" json:"category"`
	ImageURL       string     `db:"image_url" json:"image_url,omitempty"`
	TargetAudience string     `db:"target_audience" json:"target_audience"`
	KeyMessage     string     `db:"key_message" json:"key_message"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
