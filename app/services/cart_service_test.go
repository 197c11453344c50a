package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shalabia/storefront/app/catalog"
	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/app/repositories"
	"github.com/shalabia/storefront/app/services"
	"github.com/shalabia/storefront/pkg/kv"
)

func newCartService() *services.CartService {
	store := kv.NewMemoryDriver()
	return services.NewCartService(repositories.NewCartRepository(store))
}

// withCatalog swaps the live catalog for fixtures and restores it after.
func withCatalog(t *testing.T, items []models.Product) {
	t.Helper()
	orig := catalog.All()
	catalog.Replace(items)
	t.Cleanup(func() { catalog.Replace(orig) })
}

func TestCartAddAccumulatesPieces(t *testing.T) {
	cart := newCartService()

	items, err := cart.Add("visitor-1", 1)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Same product again: a second piece, not a quantity bump.
	items, err = cart.Add("visitor-1", 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, 5000, cart.Total("visitor-1"))
}

func TestCartAddUnknownProduct(t *testing.T) {
	cart := newCartService()

	_, err := cart.Add("visitor-1", 999)
	require.ErrorIs(t, err, services.ErrUnknownProduct)
	require.Empty(t, cart.Items("visitor-1"))
}

func TestCartAddOutOfStockNeverAppends(t *testing.T) {
	withCatalog(t, []models.Product{
		{ID: 1, Title: "Linen Blend Dress", Price: 2500, Category: "Dresses", InStock: true},
		{ID: 4, Title: "Velvet Abaya", Price: 3200, Category: "Dresses", InStock: false},
	})
	cart := newCartService()

	_, err := cart.Add("visitor-1", 4)
	require.ErrorIs(t, err, services.ErrOutOfStock)
	require.Empty(t, cart.Items("visitor-1"))

	// The rejection leaves in-stock additions unaffected.
	_, err = cart.Add("visitor-1", 1)
	require.NoError(t, err)
	_, err = cart.Add("visitor-1", 4)
	require.ErrorIs(t, err, services.ErrOutOfStock)
	require.Len(t, cart.Items("visitor-1"), 1)
}

func TestCartRemoveDeletesSingleOccurrence(t *testing.T) {
	cart := newCartService()

	_, err := cart.Add("visitor-1", 1)
	require.NoError(t, err)
	_, err = cart.Add("visitor-1", 2)
	require.NoError(t, err)
	_, err = cart.Add("visitor-1", 1)
	require.NoError(t, err)

	items, err := cart.Remove("visitor-1", 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, 2, items[0].ID)
	require.Equal(t, 1, items[1].ID)

	// Removing an id not in the cart is a no-op.
	items, err = cart.Remove("visitor-1", 999)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestCartsAreIsolatedByToken(t *testing.T) {
	cart := newCartService()

	_, err := cart.Add("visitor-1", 1)
	require.NoError(t, err)
	require.Empty(t, cart.Items("visitor-2"))

	require.NoError(t, cart.Clear("visitor-1"))
	require.Empty(t, cart.Items("visitor-1"))
}
