package wizard

import (
	"strings"

	"github.com/unclebandit/influencer-campaign-backend/internal/catalog"
	appErrors "github.com/unclebandit/influencer-campaign-backend/internal/errors"
)

// ValidateNiches checks a selection that is about to leave the niches step.
// Duplicates are dropped, order is kept.
func ValidateNiches(ids []string) ([]string, error) {
	seen := map[string]bool{}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if seen[id] {
			continue
		}
		if !catalog.IsCategory(id) {
			return nil, appErrors.NewValidation("selected_niches", "unknown category "+id)
		}
		seen[id] = true
		out = append(out, id)
	}

	if len(out) < MinNiches {
		return nil, appErrors.NewValidation("selected_niches", "select at least one niche")
	}
	if len(out) > MaxNiches {
		return nil, appErrors.NewValidation("selected_niches", "select at most 5 niches")
	}
	return out, nil
}

// ValidateForSubmission checks that every step the campaign depends on has
// been completed. Search criteria are optional.
func ValidateForSubmission(d *Draft, campaignName string) error {
	verr := &appErrors.ValidationError{}

	if strings.TrimSpace(campaignName) == "" {
		verr.Add("campaign_name", msgRequired)
	}
	if !d.Mode.Valid() {
		verr.Add("mode", "choose a mode")
	}
	if d.ProductDetails == nil {
		verr.Add("product_details", "complete the product details")
	}
	if n := len(d.SelectedNiches); n < MinNiches || n > MaxNiches {
		verr.Add("selected_niches", "select between 1 and 5 niches")
	}

	return verr.OrNil()
}
