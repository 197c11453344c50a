package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shalabia/storefront/app/repositories"
	"github.com/shalabia/storefront/app/services"
	"github.com/shalabia/storefront/pkg/kv"
)

func newWishlistService() (*services.WishlistService, *kv.MemoryDriver) {
	store := kv.NewMemoryDriver()
	return services.NewWishlistService(repositories.NewWishlistRepository(store)), store
}

func TestWishlistDoubleToggleRoundTrips(t *testing.T) {
	wishlist, store := newWishlistService()

	added, err := wishlist.Toggle(2)
	require.NoError(t, err)
	require.True(t, added)
	items := wishlist.Items()
	require.Len(t, items, 1)
	require.Equal(t, "Silk Evening Scarf", items[0].Title)

	added, err = wishlist.Toggle(2)
	require.NoError(t, err)
	require.False(t, added)
	require.Empty(t, wishlist.Items())

	// One write per toggle, the last reflecting the empty set.
	require.Equal(t, 2, store.Writes(repositories.KeyWishlist))
	raw, ok, err := store.Get(repositories.KeyWishlist)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "[]", raw)
}

func TestWishlistToggleUnknownProduct(t *testing.T) {
	wishlist, _ := newWishlistService()

	_, err := wishlist.Toggle(999)
	require.ErrorIs(t, err, services.ErrUnknownProduct)
	require.Empty(t, wishlist.Items())
}

func TestWishlistRemove(t *testing.T) {
	wishlist, _ := newWishlistService()

	_, err := wishlist.Toggle(1)
	require.NoError(t, err)
	_, err = wishlist.Toggle(3)
	require.NoError(t, err)

	require.NoError(t, wishlist.Remove(1))
	items := wishlist.Items()
	require.Len(t, items, 1)
	require.Equal(t, 3, items[0].ID)

	// Absent id: no-op.
	require.NoError(t, wishlist.Remove(999))
	require.Len(t, wishlist.Items(), 1)
}
