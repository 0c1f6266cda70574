package draftstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/influencer-campaign-backend/internal/catalog"
	"github.com/unclebandit/influencer-campaign-backend/internal/draftstore"
	"github.com/unclebandit/influencer-campaign-backend/internal/wizard"
)

func openStore(t *testing.T, path string) *draftstore.SQLiteStore {
	t.Helper()
	store, err := draftstore.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadMissingKey(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "drafts.db"))

	d, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestDraftRoundTripAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "drafts.db")
	key := wizard.StorageKey("client-1")

	first := openStore(t, path)
	s, err := wizard.Open(ctx, first, key)
	require.NoError(t, err)

	require.NoError(t, s.SetMode(ctx, wizard.ModeManual))
	require.NoError(t, s.SetProductDetails(ctx, wizard.DetailsForm{
		Name:           "Zapatillas",
		Description:    "Zapatillas de running",
		Price:          "",
		Category:       catalog.Sports,
		TargetAudience: "corredores",
		KeyMessage:     "Corre más",
	}))
	require.NoError(t, s.SetSelectedNiches(ctx, []string{catalog.Sports, catalog.HealthFitness}))
	before := s.Draft()
	require.NoError(t, first.Close())

	second := openStore(t, path)
	reloaded, err := wizard.Open(ctx, second, key)
	require.NoError(t, err)
	after := reloaded.Draft()

	assert.Equal(t, before.Mode, after.Mode)
	assert.Equal(t, before.ProductDetails, after.ProductDetails)
	assert.Nil(t, after.ProductDetails.Price)
	assert.Equal(t, before.SelectedNiches, after.SelectedNiches)
	assert.Equal(t, wizard.StepSearch, after.CurrentStep)
}

func TestSaveOverwritesAndDelete(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, filepath.Join(t.TempDir(), "drafts.db"))

	d := wizard.NewDraft()
	d.Mode = wizard.ModeAutomatic
	require.NoError(t, store.Save(ctx, "k", d))

	d.Mode = wizard.ModeManual
	require.NoError(t, store.Save(ctx, "k", d))

	got, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, wizard.ModeManual, got.Mode)

	require.NoError(t, store.Delete(ctx, "k"))
	got, err = store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}
