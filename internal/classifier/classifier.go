// internal/classifier/classifier.go
package classifier

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/unclebandit/influencer-campaign-backend/internal/catalog"
)

// Business type labels.
const (
	BusinessFashion = "Moda y Accesorios"
	BusinessFood    = "Alimentación"
	BusinessTech    = "Tecnología"
	BusinessBeauty  = "Belleza y Cuidado Personal"
	BusinessGeneral = "General"
)

// MaxSuggestions caps SuggestCategories.
const MaxSuggestions = 3

type keywordRule struct {
	keywords []string
	label    string
}

// Order matters: the first matching rule wins.
var businessRules = []keywordRule{
	{keywords: []string{"ropa", "moda"}, label: BusinessFashion},
	{keywords: []string{"comida", "restaurante"}, label: BusinessFood},
	{keywords: []string{"software", "app"}, label: BusinessTech},
	{keywords: []string{"belleza", "cosmético"}, label: BusinessBeauty},
}

// Every matching group contributes, in declaration order.
var categoryRules = []keywordRule{
	{keywords: []string{"moda", "ropa"}, label: catalog.Lifestyle},
	{keywords: []string{"deporte", "fitness"}, label: catalog.HealthFitness},
	{keywords: []string{"tecnología", "app"}, label: catalog.Technology},
	{keywords: []string{"comida", "cocina"}, label: catalog.FoodCooking},
	{keywords: []string{"viaje", "turismo"}, label: catalog.Travel},
}

var fallbackCategories = []string{catalog.Lifestyle, catalog.Entertainment}

func lower(s string) string {
	// Casers keep state, so one per call.
	return cases.Lower(language.Spanish).String(s)
}

func (r keywordRule) matches(text string) bool {
	for _, k := range r.keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// DetectBusinessType returns the label of the first rule whose keywords
// appear in description, or BusinessGeneral.
func DetectBusinessType(description string) string {
	text := lower(description)
	for _, rule := range businessRules {
		if rule.matches(text) {
			return rule.label
		}
	}
	return BusinessGeneral
}

// SuggestCategories returns up to MaxSuggestions category ids for the
// combined description and audience text. It never returns an empty list.
func SuggestCategories(description, audience string) []string {
	text := lower(description + " " + audience)

	suggestions := []string{}
	for _, rule := range categoryRules {
		if rule.matches(text) {
			suggestions = append(suggestions, rule.label)
		}
	}

	if len(suggestions) == 0 {
		return append([]string{}, fallbackCategories...)
	}
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}
