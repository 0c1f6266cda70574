package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/influencer-campaign-backend/internal/catalog"
	appErrors "github.com/unclebandit/influencer-campaign-backend/internal/errors"
	"github.com/unclebandit/influencer-campaign-backend/internal/wizard"
)

func TestParseProductDetailsPrice(t *testing.T) {
	cases := []struct {
		raw     string
		want    *float64
		invalid bool
	}{
		{raw: "", want: nil},
		{raw: "   ", want: nil},
		{raw: "0", want: ptrFloat(0)},
		{raw: "19.90", want: ptrFloat(19.9)},
		{raw: "19,90", want: ptrFloat(19.9)},
		{raw: "-1", invalid: true},
		{raw: "abc", invalid: true},
		{raw: "NaN", invalid: true},
		{raw: "9999999999.99", want: ptrFloat(9999999999.99)},
		{raw: "10000000000", invalid: true},
		{raw: "1e12", invalid: true},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			form := validDetails()
			form.Price = tc.raw

			pd, err := wizard.ParseProductDetails(form)
			if tc.invalid {
				var verr *appErrors.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Fields, "price")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, pd.Price)
		})
	}
}

func TestParseProductDetailsRequiredFields(t *testing.T) {
	_, err := wizard.ParseProductDetails(wizard.DetailsForm{ImageURL: "https://img"})

	var verr *appErrors.ValidationError
	require.ErrorAs(t, err, &verr)
	for _, f := range []string{"name", "description", "category", "target_audience", "key_message"} {
		assert.Contains(t, verr.Fields, f)
	}
	assert.NotContains(t, verr.Fields, "image_url")
}

func TestParseProductDetailsUnknownCategory(t *testing.T) {
	form := validDetails()
	form.Category = "crypto"

	_, err := wizard.ParseProductDetails(form)
	assert.True(t, appErrors.IsValidation(err))
}

func TestParseSearchCriteriaEmptyMeansNoFilter(t *testing.T) {
	sc, err := wizard.ParseSearchCriteria(wizard.SearchForm{})
	require.NoError(t, err)
	assert.Nil(t, sc.MinFollowers)
	assert.Nil(t, sc.MaxFollowers)
	assert.Nil(t, sc.MinEngagement)
}

func TestParseSearchCriteriaZeroIsKept(t *testing.T) {
	sc, err := wizard.ParseSearchCriteria(wizard.SearchForm{MinFollowers: "0", MinEngagement: "0"})
	require.NoError(t, err)
	require.NotNil(t, sc.MinFollowers)
	assert.Equal(t, 0, *sc.MinFollowers)
	require.NotNil(t, sc.MinEngagement)
	assert.Equal(t, 0.0, *sc.MinEngagement)
}

func TestParseSearchCriteriaRejects(t *testing.T) {
	cases := map[string]wizard.SearchForm{
		"max_followers":  {MinFollowers: "5000", MaxFollowers: "100"},
		"min_engagement": {MinEngagement: "101"},
		"min_followers":  {MinFollowers: "-3"},
		"location":       {Location: "FR"},
		"language":       {Language: "jp"},
		"budget_range":   {BudgetRange: "huge"},
	}
	tooLarge := map[string]wizard.SearchForm{
		"min_followers": {MinFollowers: "3000000000"},
		"max_followers": {MaxFollowers: "9000000000000"},
	}

	for field, form := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := wizard.ParseSearchCriteria(form)
			var verr *appErrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, field)
		})
	}
	for field, form := range tooLarge {
		t.Run(field+" too large", func(t *testing.T) {
			_, err := wizard.ParseSearchCriteria(form)
			var verr *appErrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "is too large", verr.Fields[field])
		})
	}
}

func TestParseSearchCriteriaAcceptsInt32Bound(t *testing.T) {
	sc, err := wizard.ParseSearchCriteria(wizard.SearchForm{MaxFollowers: "2147483647"})
	require.NoError(t, err)
	require.NotNil(t, sc.MaxFollowers)
	assert.Equal(t, 2147483647, *sc.MaxFollowers)
}

func TestFormsPrefillFromDraft(t *testing.T) {
	d := wizard.NewDraft()
	assert.Equal(t, wizard.DetailsForm{}, wizard.DetailsFormFrom(d))
	assert.Equal(t, wizard.SearchForm{}, wizard.SearchFormFrom(d))

	pd, err := wizard.ParseProductDetails(validDetails())
	require.NoError(t, err)
	d.ProductDetails = pd
	assert.Equal(t, "19.9", wizard.DetailsFormFrom(d).Price)

	sc, err := wizard.ParseSearchCriteria(wizard.SearchForm{MinFollowers: "1000", BudgetRange: "low"})
	require.NoError(t, err)
	d.SearchCriteria = sc
	form := wizard.SearchFormFrom(d)
	assert.Equal(t, "1000", form.MinFollowers)
	assert.Equal(t, "", form.MaxFollowers)
	assert.Equal(t, "low", form.BudgetRange)
}

func TestWithFollowerRange(t *testing.T) {
	form, ok := wizard.SearchForm{}.WithFollowerRange(1)
	require.True(t, ok)
	assert.Equal(t, "10000", form.MinFollowers)
	assert.Equal(t, "100000", form.MaxFollowers)

	form, ok = form.WithFollowerRange(4)
	require.True(t, ok)
	assert.Equal(t, "1000000", form.MinFollowers)
	assert.Equal(t, "", form.MaxFollowers)

	_, ok = form.WithFollowerRange(9)
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	d := wizard.NewDraft()
	d.Mode = wizard.ModeManual
	d.SelectedNiches = []string{catalog.Travel, catalog.Sports}
	d.SearchCriteria = &wizard.SearchCriteria{BudgetRange: "high", Location: "MX", Language: "pt"}

	sum := wizard.Summarize(d)
	require.Len(t, sum.Niches, 2)
	assert.Equal(t, "Travel", sum.Niches[0].Name)
	require.NotNil(t, sum.Budget)
	assert.Equal(t, "high", sum.Budget.ID)
	require.NotNil(t, sum.Country)
	assert.Equal(t, "México", sum.Country.Name)
	require.NotNil(t, sum.Language)
	assert.Equal(t, "Portugués", sum.Language.Name)
}

func ptrFloat(v float64) *float64 { return &v }
