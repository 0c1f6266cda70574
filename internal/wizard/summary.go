package wizard

import "github.com/unclebandit/influencer-campaign-backend/internal/catalog"

// Summary is the confirmation view: the draft with its reference ids
// resolved. Unknown ids are dropped rather than reported.
type Summary struct {
	Mode           Mode                 `json:"mode"`
	Product        *ProductDetails      `json:"product,omitempty"`
	Niches         []catalog.Category   `json:"niches"`
	SearchCriteria *SearchCriteria      `json:"search_criteria,omitempty"`
	Budget         *catalog.BudgetRange `json:"budget,omitempty"`
	Country        *catalog.Country     `json:"country,omitempty"`
	Language       *catalog.Language    `json:"language,omitempty"`
}

func Summarize(d *Draft) Summary {
	d = d.Clone()
	sum := Summary{
		Mode:           d.Mode,
		Product:        d.ProductDetails,
		Niches:         []catalog.Category{},
		SearchCriteria: d.SearchCriteria,
	}

	for _, id := range d.SelectedNiches {
		if c, ok := catalog.FindCategory(id); ok {
			sum.Niches = append(sum.Niches, c)
		}
	}

	if sc := d.SearchCriteria; sc != nil {
		if b, ok := catalog.FindBudgetRange(sc.BudgetRange); ok {
			sum.Budget = &b
		}
		if c, ok := catalog.FindCountry(sc.Location); ok {
			sum.Country = &c
		}
		if l, ok := catalog.FindLanguage(sc.Language); ok {
			sum.Language = &l
		}
	}
	return sum
}
