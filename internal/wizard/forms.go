package wizard

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/unclebandit/influencer-campaign-backend/internal/catalog"
	appErrors "github.com/unclebandit/influencer-campaign-backend/internal/errors"
)

// DetailsForm is the product step as typed by the user. Price is raw text.
type DetailsForm struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          string `json:"price"`
	Category       string `json:"category"`
	ImageURL       string `json:"image_url"`
	TargetAudience string `json:"target_audience"`
	KeyMessage     string `json:"key_message"`
}

// SearchForm is the search step as typed by the user. Empty numeric
// fields mean no filter.
type SearchForm struct {
	MinFollowers  string `json:"min_followers"`
	MaxFollowers  string `json:"max_followers"`
	MinEngagement string `json:"min_engagement"`
	Location      string `json:"location"`
	Language      string `json:"language"`
	BudgetRange   string `json:"budget_range"`
}

const msgRequired = "required"

// MaxPrice is the first price the products table can't store.
const MaxPrice = 1e10

// ParseProductDetails checks the details form and converts it. Nothing is
// returned when any field fails.
func ParseProductDetails(f DetailsForm) (*ProductDetails, error) {
	verr := &appErrors.ValidationError{}

	required := []struct {
		field string
		value string
	}{
		{"name", f.Name},
		{"description", f.Description},
		{"category", f.Category},
		{"target_audience", f.TargetAudience},
		{"key_message", f.KeyMessage},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			verr.Add(r.field, msgRequired)
		}
	}

	category := strings.TrimSpace(f.Category)
	if category != "" && !catalog.IsCategory(category) {
		verr.Add("category", "unknown category")
	}

	price, err := parseOptionalFloat(f.Price)
	switch {
	case err != nil:
		verr.Add("price", "must be a number")
	case price != nil && *price < 0:
		verr.Add("price", "must not be negative")
	case price != nil && *price >= MaxPrice:
		verr.Add("price", "is too large")
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return &ProductDetails{
		Name:           strings.TrimSpace(f.Name),
		Description:    strings.TrimSpace(f.Description),
		Price:          price,
		Category:       category,
		ImageURL:       strings.TrimSpace(f.ImageURL),
		TargetAudience: strings.TrimSpace(f.TargetAudience),
		KeyMessage:     strings.TrimSpace(f.KeyMessage),
	}, nil
}

// ParseSearchCriteria converts the search form. Every field is optional,
// but what is present must make sense.
func ParseSearchCriteria(f SearchForm) (*SearchCriteria, error) {
	verr := &appErrors.ValidationError{}

	minF, err := parseOptionalInt(f.MinFollowers)
	if errors.Is(err, strconv.ErrRange) {
		verr.Add("min_followers", "is too large")
	} else if err != nil {
		verr.Add("min_followers", "must be a whole number")
	} else if minF != nil && *minF < 0 {
		verr.Add("min_followers", "must not be negative")
	}

	maxF, err := parseOptionalInt(f.MaxFollowers)
	if errors.Is(err, strconv.ErrRange) {
		verr.Add("max_followers", "is too large")
	} else if err != nil {
		verr.Add("max_followers", "must be a whole number")
	} else if maxF != nil && *maxF < 0 {
		verr.Add("max_followers", "must not be negative")
	}

	if minF != nil && maxF != nil && *minF > *maxF {
		verr.Add("max_followers", "must be greater than or equal to min_followers")
	}

	eng, err := parseOptionalFloat(f.MinEngagement)
	if err != nil {
		verr.Add("min_engagement", "must be a number")
	} else if eng != nil && (*eng < 0 || *eng > 100) {
		verr.Add("min_engagement", "must be between 0 and 100")
	}

	location := strings.TrimSpace(f.Location)
	if location != "" {
		if _, ok := catalog.FindCountry(location); !ok {
			verr.Add("location", "unknown country")
		}
	}
	language := strings.TrimSpace(f.Language)
	if language != "" {
		if _, ok := catalog.FindLanguage(language); !ok {
			verr.Add("language", "unknown language")
		}
	}
	budget := strings.TrimSpace(f.BudgetRange)
	if budget != "" {
		if _, ok := catalog.FindBudgetRange(budget); !ok {
			verr.Add("budget_range", "unknown budget range")
		}
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return &SearchCriteria{
		MinFollowers:  minF,
		MaxFollowers:  maxF,
		MinEngagement: eng,
		Location:      location,
		Language:      language,
		BudgetRange:   budget,
	}, nil
}

// DetailsFormFrom prefills the details form from whatever the draft holds.
func DetailsFormFrom(d *Draft) DetailsForm {
	if d == nil || d.ProductDetails == nil {
		return DetailsForm{}
	}
	pd := d.ProductDetails
	return DetailsForm{
		Name:           pd.Name,
		Description:    pd.Description,
		Price:          formatFloat(pd.Price),
		Category:       pd.Category,
		ImageURL:       pd.ImageURL,
		TargetAudience: pd.TargetAudience,
		KeyMessage:     pd.KeyMessage,
	}
}

// SearchFormFrom prefills the search form from whatever the draft holds.
func SearchFormFrom(d *Draft) SearchForm {
	if d == nil || d.SearchCriteria == nil {
		return SearchForm{}
	}
	sc := d.SearchCriteria
	return SearchForm{
		MinFollowers:  formatInt(sc.MinFollowers),
		MaxFollowers:  formatInt(sc.MaxFollowers),
		MinEngagement: formatFloat(sc.MinEngagement),
		Location:      sc.Location,
		Language:      sc.Language,
		BudgetRange:   sc.BudgetRange,
	}
}

// WithFollowerRange fills the follower fields from the preset band at
// index i. An open-ended band clears the max.
func (f SearchForm) WithFollowerRange(i int) (SearchForm, bool) {
	r, ok := catalog.FollowerRangeAt(i)
	if !ok {
		return f, false
	}
	f.MinFollowers = strconv.Itoa(r.Min)
	f.MaxFollowers = formatInt(r.Max)
	return f, true
}

// parseOptionalInt keeps follower counts within a 32-bit column.
func parseOptionalInt(raw string) (*int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil, err
	}
	n := int(v)
	return &n, nil
}

// parseOptionalFloat accepts a decimal comma when no dot is present.
func parseOptionalFloat(raw string) (*float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, strconv.ErrSyntax
	}
	return &v, nil
}

func formatInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func formatFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
