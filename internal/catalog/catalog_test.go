package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/influencer-campaign-backend/internal/catalog"
)

func TestCategoriesHaveUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range catalog.Categories() {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Subcategories, c.ID)
	}
	assert.Len(t, seen, 10)
}

func TestAccessorsReturnCopies(t *testing.T) {
	cats := catalog.Categories()
	cats[0].Name = "mutated"
	assert.Equal(t, "Lifestyle", catalog.Categories()[0].Name)

	langs := catalog.Languages()
	langs[0].Code = "xx"
	_, ok := catalog.FindLanguage("es")
	assert.True(t, ok)
}

func TestFollowerRangeAt(t *testing.T) {
	r, ok := catalog.FollowerRangeAt(0)
	require.True(t, ok)
	assert.Equal(t, 1000, r.Min)
	require.NotNil(t, r.Max)
	assert.Equal(t, 10000, *r.Max)

	last, ok := catalog.FollowerRangeAt(len(catalog.FollowerRanges()) - 1)
	require.True(t, ok)
	assert.Nil(t, last.Max)

	_, ok = catalog.FollowerRangeAt(-1)
	assert.False(t, ok)
	_, ok = catalog.FollowerRangeAt(5)
	assert.False(t, ok)
}

func TestLookups(t *testing.T) {
	assert.True(t, catalog.IsCategory(catalog.FoodCooking))
	assert.False(t, catalog.IsCategory("gardening"))

	b, ok := catalog.FindBudgetRange("premium")
	require.True(t, ok)
	assert.Nil(t, b.Max)

	c, ok := catalog.FindCountry("MX")
	require.True(t, ok)
	assert.Equal(t, "México", c.Name)

	_, ok = catalog.FindCountry("mx")
	assert.False(t, ok)
}
