package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shophub_back_end/internal/models"
)

func TestOrderStore_AppendOnly(t *testing.T) {
	orders, err := NewOrderStore(newTestDocs(t))
	require.NoError(t, err)

	first := models.Order{Number: orders.NextNumber(), CustomerName: "Alice", Total: 100, CreatedAt: time.Now()}
	second := models.Order{Number: orders.NextNumber(), CustomerName: "Bob", Total: 200, CreatedAt: time.Now()}

	require.NoError(t, orders.Append(first))
	require.NoError(t, orders.Append(second))

	all, err := orders.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alice", all[0].CustomerName)
	assert.Equal(t, "Bob", all[1].CustomerName)
}

func TestOrderStore_NextNumberUniqueAndOrdered(t *testing.T) {
	orders, err := NewOrderStore(newTestDocs(t))
	require.NoError(t, err)

	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 100; i++ {
		n := orders.NextNumber()
		assert.False(t, seen[n], "numéro de commande dupliqué : %s", n)
		seen[n] = true
		assert.Greater(t, n, prev)
		prev = n
	}
}

func TestOrderStore_FindByNumber(t *testing.T) {
	orders, err := NewOrderStore(newTestDocs(t))
	require.NoError(t, err)

	order := models.Order{Number: orders.NextNumber(), CustomerName: "Alice"}
	require.NoError(t, orders.Append(order))

	found, err := orders.FindByNumber(order.Number)
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.CustomerName)

	_, err = orders.FindByNumber("ORD-0")
	assert.ErrorIs(t, err, models.ErrOrderNotFound)
}

func TestCompleteOrder_AppendsAndClearsCartTogether(t *testing.T) {
	docs := newTestDocs(t)
	catalog := NewCatalogStore(docs)
	_, err := catalog.Load()
	require.NoError(t, err)

	cart := NewCartStore(docs, catalog)
	_, err = cart.AddToCart(1)
	require.NoError(t, err)

	orders, err := NewOrderStore(docs)
	require.NoError(t, err)

	items, err := cart.Items()
	require.NoError(t, err)

	order := models.Order{Number: orders.NextNumber(), Items: items, Total: 2849}
	require.NoError(t, orders.CompleteOrder(order))

	all, err := orders.All()
	require.NoError(t, err)
	require.Len(t, all, 1)

	after, err := cart.Items()
	require.NoError(t, err)
	assert.Empty(t, after, "le panier doit être vidé dans la même transaction")
}

func TestOrder_ImmutableAfterCatalogChanges(t *testing.T) {
	docs := newTestDocs(t)
	catalog := NewCatalogStore(docs)
	_, err := catalog.Load()
	require.NoError(t, err)

	cart := NewCartStore(docs, catalog)
	_, err = cart.AddToCart(1)
	require.NoError(t, err)

	orders, err := NewOrderStore(docs)
	require.NoError(t, err)

	items, err := cart.Items()
	require.NoError(t, err)
	order := models.Order{Number: orders.NextNumber(), Items: items, Subtotal: 2499}
	require.NoError(t, orders.CompleteOrder(order))

	// Le produit commandé disparaît du catalogue…
	require.NoError(t, catalog.Delete(1))

	// …mais le reçu garde son instantané intact.
	found, err := orders.FindByNumber(order.Number)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Wireless Headphones", found.Items[0].Name)
	assert.Equal(t, int64(2499), found.Items[0].Price)
	assert.Equal(t, int64(2499), found.Subtotal)
}
