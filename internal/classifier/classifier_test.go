package classifier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/influencer-campaign-backend/internal/catalog"
	"github.com/unclebandit/influencer-campaign-backend/internal/classifier"
)

func TestDetectBusinessType(t *testing.T) {
	cases := []struct {
		name        string
		description string
		want        string
	}{
		{"fashion", "Tienda de MODA urbana", classifier.BusinessFashion},
		{"food", "Restaurante familiar", classifier.BusinessFood},
		{"software", "Desarrollamos software a medida", classifier.BusinessTech},
		{"beauty", "Productos de belleza natural", classifier.BusinessBeauty},
		{"fashion beats food", "ropa y comida para llevar", classifier.BusinessFashion},
		{"food beats software", "app de comida a domicilio", classifier.BusinessFood},
		{"no keyword", "Consultoría legal", classifier.BusinessGeneral},
		{"empty", "", classifier.BusinessGeneral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifier.DetectBusinessType(tc.description))
		})
	}
}

func TestSuggestCategoriesFallback(t *testing.T) {
	got := classifier.SuggestCategories("Consultoría legal", "empresas")
	assert.Equal(t, []string{catalog.Lifestyle, catalog.Entertainment}, got)

	got = classifier.SuggestCategories("", "")
	assert.Equal(t, []string{catalog.Lifestyle, catalog.Entertainment}, got)
}

func TestSuggestCategoriesTruncatesInDeclarationOrder(t *testing.T) {
	// Matches all five groups, listed in reverse.
	got := classifier.SuggestCategories("turismo, cocina y una app", "deporte y moda")
	assert.Equal(t, []string{catalog.Lifestyle, catalog.HealthFitness, catalog.Technology}, got)
}

func TestSuggestCategoriesCollectsEveryGroup(t *testing.T) {
	got := classifier.SuggestCategories("Comida casera", "amantes del viaje")
	assert.Equal(t, []string{catalog.FoodCooking, catalog.Travel}, got)
}

func TestSuggestCategoriesFallbackIsNotShared(t *testing.T) {
	first := classifier.SuggestCategories("", "")
	first[0] = "mutated"

	second := classifier.SuggestCategories("", "")
	assert.Equal(t, catalog.Lifestyle, second[0])
}

func TestComposeSportswearScenario(t *testing.T) {
	res := classifier.Compose(classifier.AnalysisInput{
		BusinessDescription: "Vendemos ropa deportiva",
		TargetAudience:      "mujeres jóvenes fitness",
	})

	assert.Equal(t, classifier.BusinessFashion, res.BusinessType)
	assert.Contains(t, res.RecommendedCategories, catalog.Lifestyle)
	assert.Contains(t, res.RecommendedCategories, catalog.HealthFitness)
	assert.Equal(t, classifier.TierMicro, res.InfluencerStrategy.Type)
}

func TestComposeEmptyScenario(t *testing.T) {
	res := classifier.Compose(classifier.AnalysisInput{})

	assert.Equal(t, classifier.BusinessGeneral, res.BusinessType)
	assert.Equal(t, []string{catalog.Lifestyle, catalog.Entertainment}, res.RecommendedCategories)
	assert.Equal(t, classifier.TierMacro, res.InfluencerStrategy.Type)
	assert.Equal(t, classifier.BudgetEstimate{Min: 500, Max: 2000, Currency: "EUR"}, res.EstimatedBudget)
	assert.Len(t, res.KeyRecommendations, 4)
	assert.Equal(t, 85, res.SuccessProbability)
}

func TestComposeFoldsOnlyTheYouthMarker(t *testing.T) {
	res := classifier.Compose(classifier.AnalysisInput{
		BusinessDescription: "productos de cosmetico",
		TargetAudience:      "JÓVENES amantes de la tecnologia",
	})

	assert.Equal(t, classifier.TierMicro, res.InfluencerStrategy.Type)
	assert.Equal(t, classifier.BusinessGeneral, res.BusinessType)
	assert.Equal(t, []string{catalog.Lifestyle, catalog.Entertainment}, res.RecommendedCategories)
}

func TestAnalyzeUsesInjectedSleeper(t *testing.T) {
	var slept time.Duration
	a := &classifier.Analyzer{
		Delay: 2 * time.Second,
		Sleep: func(ctx context.Context, d time.Duration) error {
			slept = d
			return nil
		},
	}

	res, err := a.Analyze(context.Background(), classifier.AnalysisInput{BusinessDescription: "app"})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, slept)
	assert.Equal(t, classifier.BusinessTech, res.BusinessType)
}

func TestAnalyzeTimesOut(t *testing.T) {
	a := classifier.NewAnalyzer(time.Hour, 10*time.Millisecond)

	_, err := a.Analyze(context.Background(), classifier.AnalysisInput{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
