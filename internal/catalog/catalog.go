// internal/catalog/catalog.go
package catalog

// Category is one entry of the niche taxonomy.
type Category struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Icon          string   `json:"icon"`
	Subcategories []string `json:"subcategories"`
}

type FollowerRange struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   *int   `json:"max"` // nil means open ended
}

type BudgetRange struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   *int   `json:"max"`
}

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

const (
	Lifestyle     = "lifestyle"
	HealthFitness = "health-fitness"
	Technology    = "technology"
	FoodCooking   = "food-cooking"
	Entertainment = "entertainment"
	Business      = "business"
	Travel        = "travel"
	Education     = "education"
	Family        = "family"
	Sports        = "sports"
)

func intPtr(v int) *int { return &v }

var categories = []Category{
	{ID: Lifestyle, Name: "Lifestyle", Icon: "🌟", Subcategories: []string{"Moda", "Belleza", "Hogar", "Lujo"}},
	{ID: HealthFitness, Name: "Health & Fitness", Icon: "💪", Subcategories: []string{"Entrenamiento", "Nutrición", "Bienestar", "Yoga"}},
	{ID: Technology, Name: "Technology", Icon: "💻", Subcategories: []string{"Reviews", "Móviles", "Gaming", "IA"}},
	{ID: FoodCooking, Name: "Food & Cooking", Icon: "🍳", Subcategories: []string{"Recetas", "Comida Saludable", "Postres", "Cocina Regional"}},
	{ID: Entertainment, Name: "Entertainment", Icon: "🎭", Subcategories: []string{"Música", "Baile", "Comedia", "Shows"}},
	{ID: Business, Name: "Business", Icon: "💼", Subcategories: []string{"Emprendimiento", "Marketing", "Finanzas", "Productividad"}},
	{ID: Travel, Name: "Travel", Icon: "✈️", Subcategories: []string{"Aventuras", "Turismo", "Cultura", "Destinos"}},
	{ID: Education, Name: "Education", Icon: "📚", Subcategories: []string{"Tutoriales", "Consejos", "Desarrollo Personal"}},
	{ID: Family, Name: "Family", Icon: "👨‍👩‍👧‍👦", Subcategories: []string{"Parentalidad", "Niños", "Vida Familiar"}},
	{ID: Sports, Name: "Sports", Icon: "⚽", Subcategories: []string{"Deportes específicos", "Atletas", "Equipos"}},
}

var followerRanges = []FollowerRange{
	{Label: "Nano (1K - 10K)", Min: 1000, Max: intPtr(10000)},
	{Label: "Micro (10K - 100K)", Min: 10000, Max: intPtr(100000)},
	{Label: "Mid-tier (100K - 500K)", Min: 100000, Max: intPtr(500000)},
	{Label: "Macro (500K - 1M)", Min: 500000, Max: intPtr(1000000)},
	{Label: "Mega (1M+)", Min: 1000000, Max: nil},
}

var budgetRanges = []BudgetRange{
	{ID: "low", Label: "Bajo (< €500)", Min: 0, Max: intPtr(500)},
	{ID: "medium", Label: "Medio (€500 - €2000)", Min: 500, Max: intPtr(2000)},
	{ID: "high", Label: "Alto (€2000 - €5000)", Min: 2000, Max: intPtr(5000)},
	{ID: "premium", Label: "Premium (> €5000)", Min: 5000, Max: nil},
}

var languages = []Language{
	{Code: "es", Name: "Español"},
	{Code: "en", Name: "Inglés"},
	{Code: "pt", Name: "Portugués"},
	{Code: "fr", Name: "Francés"},
	{Code: "de", Name: "Alemán"},
	{Code: "it", Name: "Italiano"},
}

var countries = []Country{
	{Code: "ES", Name: "España"},
	{Code: "MX", Name: "México"},
	{Code: "AR", Name: "Argentina"},
	{Code: "CO", Name: "Colombia"},
	{Code: "US", Name: "Estados Unidos"},
	{Code: "BR", Name: "Brasil"},
}

// The tables are immutable: accessors hand out copies so callers
// can't edit the shared reference data.

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func FollowerRanges() []FollowerRange {
	out := make([]FollowerRange, len(followerRanges))
	copy(out, followerRanges)
	return out
}

func BudgetRanges() []BudgetRange {
	out := make([]BudgetRange, len(budgetRanges))
	copy(out, budgetRanges)
	return out
}

func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// FindCategory looks up a category by id.
func FindCategory(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func IsCategory(id string) bool {
	_, ok := FindCategory(id)
	return ok
}

// FollowerRangeAt returns the follower band at index i.
func FollowerRangeAt(i int) (FollowerRange, bool) {
	if i < 0 || i >= len(followerRanges) {
		return FollowerRange{}, false
	}
	return followerRanges[i], true
}

func FindBudgetRange(id string) (BudgetRange, bool) {
	for _, b := range budgetRanges {
		if b.ID == id {
			return b, true
		}
	}
	return BudgetRange{}, false
}

func FindLanguage(code string) (Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

func FindCountry(code string) (Country, bool) {
	for _, c := range countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}
