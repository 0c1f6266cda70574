// Package wizard holds the campaign creation wizard: the draft that is
// accumulated across the five steps, the rules that gate each step and the
// session object that persists the draft after every change.
package wizard

// Mode is how creators are found for the campaign.
type Mode string

const (
	ModeUnset     Mode = ""
	ModeAutomatic Mode = "automatic"
	ModeManual    Mode = "manual"
)

func (m Mode) Valid() bool {
	return m == ModeAutomatic || m == ModeManual
}

// Step numbers the wizard pages.
type Step int

const (
	StepMode Step = iota + 1
	StepDetails
	StepNiches
	StepSearch
	StepConfirm
)

const (
	FirstStep = StepMode
	LastStep  = StepConfirm

	MinNiches = 1
	MaxNiches = 5
)

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

func (s Step) String() string {
	switch s {
	case StepMode:
		return "mode"
	case StepDetails:
		return "details"
	case StepNiches:
		return "niches"
	case StepSearch:
		return "search"
	case StepConfirm:
		return "confirm"
	}
	return "unknown"
}

type ProductDetails struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          *float64 `json:"price"`
	Category       string   `json:"category"`
	ImageURL       string   `json:"image_url"`
	TargetAudience string   `json:"target_audience"`
	KeyMessage     string   `json:"key_message"`
}

// SearchCriteria are the creator filters. Nil numbers mean "no filter".
type SearchCriteria struct {
	MinFollowers  *int     `json:"min_followers"`
	MaxFollowers  *int     `json:"max_followers"`
	MinEngagement *float64 `json:"min_engagement"`
	Location      string   `json:"location"`
	Language      string   `json:"language"`
	BudgetRange   string   `json:"budget_range"`
}

// Draft is the not-yet-submitted campaign. It is the only thing persisted
// for a client; the user identity never goes in here.
type Draft struct {
	Mode           Mode            `json:"mode"`
	ProductDetails *ProductDetails `json:"product_details"`
	SelectedNiches []string        `json:"selected_niches"`
	SearchCriteria *SearchCriteria `json:"search_criteria"`
	CurrentStep    Step            `json:"current_step"`
}

func NewDraft() *Draft {
	return &Draft{
		SelectedNiches: []string{},
		CurrentStep:    FirstStep,
	}
}

// Clone returns a deep copy.
func (d *Draft) Clone() *Draft {
	out := &Draft{
		Mode:           d.Mode,
		SelectedNiches: append([]string{}, d.SelectedNiches...),
		CurrentStep:    d.CurrentStep,
	}
	if d.ProductDetails != nil {
		pd := *d.ProductDetails
		pd.Price = cloneFloat(d.ProductDetails.Price)
		out.ProductDetails = &pd
	}
	if d.SearchCriteria != nil {
		sc := *d.SearchCriteria
		sc.MinFollowers = cloneInt(d.SearchCriteria.MinFollowers)
		sc.MaxFollowers = cloneInt(d.SearchCriteria.MaxFollowers)
		sc.MinEngagement = cloneFloat(d.SearchCriteria.MinEngagement)
		out.SearchCriteria = &sc
	}
	return out
}

// HasNiche reports whether id is selected.
func (d *Draft) HasNiche(id string) bool {
	for _, n := range d.SelectedNiches {
		if n == id {
			return true
		}
	}
	return false
}

// normalize repairs what a hand-edited or older blob could carry.
func (d *Draft) normalize() {
	if d.SelectedNiches == nil {
		d.SelectedNiches = []string{}
	}
	if !d.CurrentStep.Valid() {
		d.CurrentStep = FirstStep
	}
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
