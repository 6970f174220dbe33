package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shophub_back_end/internal/models"
)

func newTestCart(t *testing.T) *CartStore {
	t.Helper()
	docs := newTestDocs(t)
	catalog := NewCatalogStore(docs)
	_, err := catalog.Load()
	require.NoError(t, err)
	return NewCartStore(docs, catalog)
}

func TestAddToCart_IncrementsSameLine(t *testing.T) {
	cart := newTestCart(t)

	for i := 0; i < 3; i++ {
		_, err := cart.AddToCart(1)
		require.NoError(t, err)
	}

	items, err := cart.Items()
	require.NoError(t, err)
	require.Len(t, items, 1, "une seule ligne par produit")
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddToCart_SnapshotsProduct(t *testing.T) {
	cart := newTestCart(t)

	summary, err := cart.AddToCart(2)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "Smart Watch", summary.Items[0].Name)
	assert.Equal(t, int64(5999), summary.Items[0].Price)
	assert.Equal(t, int64(5999+100+600), summary.Totals.Total)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	cart := newTestCart(t)

	_, err := cart.AddToCart(424242)
	assert.ErrorIs(t, err, models.ErrProductNotFound)

	items, err := cart.Items()
	require.NoError(t, err)
	assert.Empty(t, items, "un produit inconnu ne doit rien changer au panier")
}

func TestRemoveFromCart_Idempotent(t *testing.T) {
	cart := newTestCart(t)

	_, err := cart.AddToCart(1)
	require.NoError(t, err)

	summary, err := cart.RemoveFromCart(1)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)

	// Deuxième suppression : no-op, pas d'erreur.
	summary, err = cart.RemoveFromCart(1)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
}

func TestCartSummary_MatchesPricingEverywhere(t *testing.T) {
	cart := newTestCart(t)

	_, err := cart.AddToCart(1)
	require.NoError(t, err)
	_, err = cart.AddToCart(2)
	require.NoError(t, err)
	summary, err := cart.AddToCart(2)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, int64(2499+5999*2), summary.Totals.Subtotal)
	assert.Equal(t, int64(100), summary.Totals.Shipping)
	assert.Equal(t, int64(1450), summary.Totals.Tax)
	assert.Equal(t, int64(16047), summary.Totals.Total)

	// Une relecture indépendante donne bit pour bit les mêmes montants.
	again, err := cart.Summary()
	require.NoError(t, err)
	assert.Equal(t, summary.Totals, again.Totals)
}

func TestToggleWishlist(t *testing.T) {
	cart := newTestCart(t)

	added, err := cart.ToggleWishlist(1)
	require.NoError(t, err)
	assert.True(t, added)

	list, err := cart.Wishlist()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Wireless Headphones", list[0].Name)

	// Deuxième bascule : retour à l'état initial.
	added, err = cart.ToggleWishlist(1)
	require.NoError(t, err)
	assert.False(t, added)

	list, err = cart.Wishlist()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestToggleWishlist_UnknownProduct(t *testing.T) {
	cart := newTestCart(t)

	_, err := cart.ToggleWishlist(424242)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestRemoveFromWishlist(t *testing.T) {
	cart := newTestCart(t)

	_, err := cart.ToggleWishlist(1)
	require.NoError(t, err)
	_, err = cart.ToggleWishlist(2)
	require.NoError(t, err)

	require.NoError(t, cart.RemoveFromWishlist(1))

	list, err := cart.Wishlist()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].ID)

	// Idempotent.
	require.NoError(t, cart.RemoveFromWishlist(1))
}

func TestCart_PersistsAcrossReopen(t *testing.T) {
	docs := newTestDocs(t)
	catalog := NewCatalogStore(docs)
	_, err := catalog.Load()
	require.NoError(t, err)

	cart := NewCartStore(docs, catalog)
	_, err = cart.AddToCart(1)
	require.NoError(t, err)

	// Un nouveau store sur les mêmes documents voit le même panier.
	cart2 := NewCartStore(docs, catalog)
	items, err := cart2.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}
