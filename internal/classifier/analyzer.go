// internal/classifier/analyzer.go
package classifier

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultAnalysisDelay = 2 * time.Second

	TierMicro = "micro-influencers"
	TierMacro = "macro-influencers"

	youngAudienceMarker = "joven"
	successProbability  = 85
)

var keyRecommendations = []string{
	"Enfócate en influencers con alta tasa de engagement (>3%)",
	"Prioriza creadores que compartan los valores de tu marca",
	"Comienza con campañas pequeñas para testear resultados",
	"Mide el ROI constantemente y ajusta tu estrategia",
}

// AnalysisInput is what the business analyzer form collects. Only the
// description and audience feed the result.
type AnalysisInput struct {
	BusinessDescription string `json:"business_description"`
	TargetAudience      string `json:"target_audience"`
	MainGoals           string `json:"main_goals"`
	CurrentChallenges   string `json:"current_challenges"`
}

type InfluencerStrategy struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

type BudgetEstimate struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Result is computed fresh on every request and never stored.
type Result struct {
	BusinessType          string             `json:"business_type"`
	RecommendedCategories []string           `json:"recommended_categories"`
	InfluencerStrategy    InfluencerStrategy `json:"influencer_strategy"`
	EstimatedBudget       BudgetEstimate     `json:"estimated_budget"`
	KeyRecommendations    []string           `json:"key_recommendations"`
	SuccessProbability    int                `json:"success_probability"`
}

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Analyzer simulates an external inference call: a fixed delay followed
// by a mostly templated result.
type Analyzer struct {
	Delay   time.Duration
	Timeout time.Duration // zero means no timeout
	Sleep   Sleeper
}

func NewAnalyzer(delay, timeout time.Duration) *Analyzer {
	return &Analyzer{Delay: delay, Timeout: timeout, Sleep: sleepContext}
}

func (a *Analyzer) Analyze(ctx context.Context, in AnalysisInput) (*Result, error) {
	if a.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}

	sleep := a.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	if err := sleep(ctx, a.Delay); err != nil {
		return nil, fmt.Errorf("business analysis: %w", err)
	}

	return Compose(in), nil
}

// fold lower-cases s and strips diacritics, so "Jóvenes" contains "joven".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, lower(s))
	if err != nil {
		return lower(s)
	}
	return out
}

// Compose builds the analysis result without the simulated latency.
// Only the youth marker is matched on folded text; the keyword rules
// match accented keywords as written, so "tecnologia" stays unmatched.
func Compose(in AnalysisInput) *Result {
	tier := TierMacro
	if strings.Contains(fold(in.TargetAudience), youngAudienceMarker) {
		tier = TierMicro
	}

	recs := make([]string, len(keyRecommendations))
	copy(recs, keyRecommendations)

	return &Result{
		BusinessType:          DetectBusinessType(in.BusinessDescription),
		RecommendedCategories: SuggestCategories(in.BusinessDescription, in.TargetAudience),
		InfluencerStrategy: InfluencerStrategy{
			Type:   tier,
			Reason: "Basado en tu audiencia objetivo y tipo de negocio",
		},
		EstimatedBudget:    BudgetEstimate{Min: 500, Max: 2000, Currency: "EUR"},
		KeyRecommendations: recs,
		SuccessProbability: successProbability,
	}
}
