package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/unclebandit/influencer-campaign-backend/internal/catalog"
	"github.com/unclebandit/influencer-campaign-backend/internal/classifier"
	appErrors "github.com/unclebandit/influencer-campaign-backend/internal/errors"
	"github.com/unclebandit/influencer-campaign-backend/internal/model"
)

// Submitter writes the product and the campaign for a finished draft.
type Submitter interface {
	SubmitCampaign(ctx context.Context, userID, campaignName string, d Draft) (*model.Campaign, error)
}

// Session is the wizard for one client. Every change goes through the
// store before it becomes visible, so a failed save leaves the draft as
// it was. A Session is not safe for concurrent use.
type Session struct {
	key   string
	store Store
	draft *Draft
}

// Open loads the client's draft, or starts an empty one.
func Open(ctx context.Context, store Store, key string) (*Session, error) {
	d, err := store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load wizard draft: %w", err)
	}
	if d == nil {
		d = NewDraft()
	}
	d.normalize()
	return &Session{key: key, store: store, draft: d}, nil
}

// Draft returns a copy of the current draft.
func (s *Session) Draft() Draft {
	return *s.draft.Clone()
}

func (s *Session) apply(ctx context.Context, mutate func(d *Draft)) error {
	next := s.draft.Clone()
	mutate(next)
	if err := s.store.Save(ctx, s.key, next); err != nil {
		return fmt.Errorf("save wizard draft: %w", err)
	}
	s.draft = next
	return nil
}

func (s *Session) SetMode(ctx context.Context, m Mode) error {
	if !m.Valid() {
		return appErrors.NewValidation("mode", "must be automatic or manual")
	}
	return s.apply(ctx, func(d *Draft) {
		d.Mode = m
		d.CurrentStep = StepDetails
	})
}

// SetProductDetails stores the details and moves on to the niches step.
// A validation error leaves the draft, step included, untouched.
func (s *Session) SetProductDetails(ctx context.Context, f DetailsForm) error {
	pd, err := ParseProductDetails(f)
	if err != nil {
		return err
	}
	return s.apply(ctx, func(d *Draft) {
		d.ProductDetails = pd
		d.CurrentStep = StepNiches
	})
}

// ToggleNiche flips one niche while the niches step is being edited.
// Adding a sixth niche is ignored; it reports whether anything changed.
func (s *Session) ToggleNiche(ctx context.Context, id string) (bool, error) {
	if !catalog.IsCategory(id) {
		return false, appErrors.NewValidation("selected_niches", "unknown category "+id)
	}

	if s.draft.HasNiche(id) {
		return true, s.apply(ctx, func(d *Draft) {
			kept := make([]string, 0, len(d.SelectedNiches))
			for _, n := range d.SelectedNiches {
				if n != id {
					kept = append(kept, n)
				}
			}
			d.SelectedNiches = kept
		})
	}

	if len(s.draft.SelectedNiches) >= MaxNiches {
		return false, nil
	}
	return true, s.apply(ctx, func(d *Draft) {
		d.SelectedNiches = append(d.SelectedNiches, id)
	})
}

// SetSelectedNiches replaces the selection and moves on to the search step.
func (s *Session) SetSelectedNiches(ctx context.Context, ids []string) error {
	niches, err := ValidateNiches(ids)
	if err != nil {
		return err
	}
	return s.apply(ctx, func(d *Draft) {
		d.SelectedNiches = niches
		d.CurrentStep = StepSearch
	})
}

func (s *Session) SetSearchCriteria(ctx context.Context, f SearchForm) error {
	sc, err := ParseSearchCriteria(f)
	if err != nil {
		return err
	}
	return s.apply(ctx, func(d *Draft) {
		d.SearchCriteria = sc
		d.CurrentStep = StepConfirm
	})
}

// AdvanceStep records the step being shown. It never gates navigation.
func (s *Session) AdvanceStep(ctx context.Context, n Step) error {
	if !n.Valid() {
		return appErrors.NewValidation("step", fmt.Sprintf("must be between %d and %d", FirstStep, LastStep))
	}
	return s.apply(ctx, func(d *Draft) {
		d.CurrentStep = n
	})
}

func (s *Session) RetreatStep(ctx context.Context) error {
	return s.apply(ctx, func(d *Draft) {
		if d.CurrentStep > FirstStep {
			d.CurrentStep--
		}
	})
}

// Reset empties the draft, on cancel or after a successful submission.
func (s *Session) Reset(ctx context.Context) error {
	return s.apply(ctx, func(d *Draft) {
		*d = *NewDraft()
	})
}

// Submit hands the draft to sub. The draft is only reset when the
// campaign was written; on any failure it stays as it is so the user can
// retry without typing everything again.
func (s *Session) Submit(ctx context.Context, sub Submitter, userID, campaignName string) (*model.Campaign, error) {
	if userID == "" {
		return nil, appErrors.ErrUnauthenticated
	}
	campaignName = strings.TrimSpace(campaignName)
	if err := ValidateForSubmission(s.draft, campaignName); err != nil {
		return nil, err
	}

	campaign, err := sub.SubmitCampaign(ctx, userID, campaignName, s.Draft())
	if err != nil {
		return nil, err
	}

	if err := s.Reset(ctx); err != nil {
		// The campaign exists; a stale draft is the lesser problem.
		return campaign, errors.Join(errDraftNotReset, err)
	}
	return campaign, nil
}

var errDraftNotReset = errors.New("campaign created but draft was not cleared")

// IsDraftNotReset reports the post-submit reset failure.
func IsDraftNotReset(err error) bool {
	return errors.Is(err, errDraftNotReset)
}

// DetailsForm is the details step prefilled from the draft.
func (s *Session) DetailsForm() DetailsForm {
	return DetailsFormFrom(s.draft)
}

// SearchForm is the search step prefilled from the draft.
func (s *Session) SearchForm() SearchForm {
	return SearchFormFrom(s.draft)
}

// SuggestedNiches is what the niches step starts from: the saved
// selection, or classifier suggestions from the product details.
func (s *Session) SuggestedNiches() []string {
	if len(s.draft.SelectedNiches) > 0 {
		return append([]string{}, s.draft.SelectedNiches...)
	}
	pd := s.draft.ProductDetails
	if pd == nil {
		return classifier.SuggestCategories("", "")
	}
	return classifier.SuggestCategories(pd.Name+" "+pd.Description, pd.TargetAudience)
}

// DefaultCampaignName is "Campaña <product> - <date>", or empty when no
// product has been described yet.
func (s *Session) DefaultCampaignName(now time.Time) string {
	if s.draft.ProductDetails == nil || s.draft.ProductDetails.Name == "" {
		return ""
	}
	return fmt.Sprintf("Campaña %s - %s", s.draft.ProductDetails.Name, now.Format("2/1/2006"))
}
